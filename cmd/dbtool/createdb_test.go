package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateDatabaseStatement(t *testing.T) {
	assert.Equal(t, `CREATE DATABASE "kakanin"`, createDatabaseStatement("kakanin"))
	assert.Equal(t, `CREATE DATABASE "kakanin""; DROP TABLE users; --"`,
		createDatabaseStatement(`kakanin"; DROP TABLE users; --`))
}
