package order

import (
	"fmt"

	"kakanin/internal/pkg/errs"
)

// Delicacy is the rice cake being ordered.
type Delicacy int

const (
	UnknownDelicacy Delicacy = iota
	Sinukmani
	SapinSapin
	Puto
	PutoAlsa
	Kutsinta
	PutoKutsinta
	Maja
	PichiPichi
	Palitaw
	Karioka
	SumanMalagkit
	SumanCassava
	SumanLihia
)

var delicacies = []enumEntry[Delicacy]{
	{Sinukmani, "SINUKMANI", "Sinukmani"},
	{SapinSapin, "SAPIN_SAPIN", "Sapin-Sapin"},
	{Puto, "PUTO", "Puto"},
	{PutoAlsa, "PUTO_ALSA", "Puto Alsa"},
	{Kutsinta, "KUTSINTA", "Kutsinta"},
	{PutoKutsinta, "PUTO_KUTSINTA", "Puto Kutsinta"},
	{Maja, "MAJA", "Maja"},
	{PichiPichi, "PICHI_PICHI", "Pichi-Pichi"},
	{Palitaw, "PALITAW", "Palitaw"},
	{Karioka, "KARIOKA", "Karioka"},
	{SumanMalagkit, "SUMAN_MALAGKIT", "Suman (Malagkit)"},
	{SumanCassava, "SUMAN_CASSAVA", "Suman (Cassava)"},
	{SumanLihia, "SUMAN_LIHIA", "Suman (Lihia)"},
}

// ParseDelicacy accepts a code ("PICHI_PICHI") or a display name ("Pichi-Pichi").
func ParseDelicacy(raw string) (Delicacy, error) {
	return parseEnum("delicacy", raw, delicacies)
}

// Delicacies lists every orderable delicacy in menu order.
func Delicacies() []Delicacy {
	return enumValues(delicacies)
}

func (d Delicacy) Validate() error {
	if _, ok := lookupEntry(d, delicacies); !ok {
		return errs.NewValueIsInvalidErrorWithCause("delicacy", fmt.Errorf("%d is not a valid delicacy", d))
	}
	return nil
}

// Code is the storage and API form.
func (d Delicacy) Code() string {
	if e, ok := lookupEntry(d, delicacies); ok {
		return e.code
	}
	return "UNKNOWN"
}

func (d Delicacy) String() string {
	if e, ok := lookupEntry(d, delicacies); ok {
		return e.name
	}
	return "Unknown"
}
