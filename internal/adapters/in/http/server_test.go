package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kakanin/cmd"
	"kakanin/internal/adapters/out/postgres/pgtest"
	"kakanin/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	adminUsername = "admin"
	adminPassword = "bibingka123"
)

type ServerTestSuite struct {
	suite.Suite
	router *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	db, err := pgtest.OpenSQLite()
	suite.Require().NoError(err)

	config := cmd.Config{AdminUsername: adminUsername, AdminPassword: adminPassword}
	app := cmd.NewCompositionRoot(config, db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.Require().NoError(app.EnsureAdminUser(context.Background(), logger))

	suite.router, err = app.CreateRouter(logger)
	suite.Require().NoError(err)
}

func (suite *ServerTestSuite) do(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.SetBasicAuth(adminUsername, adminPassword)
	}

	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) createOrder(delicacy, pickupDate string) string {
	rec := suite.do(http.MethodPost, "/api/v1/orders", newOrderBody(delicacy, pickupDate), true)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created servers.OrderCreated
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	return created.Id.String()
}

func newOrderBody(delicacy, pickupDate string) map[string]any {
	return map[string]any{
		"buyerName":     "Maria Santos",
		"contactNumber": "09171234567",
		"address":       "12 Mabini St.",
		"delicacy":      delicacy,
		"quantity":      2,
		"containerSize": "12' Bilao",
		"pickupPlace":   "Home",
		"pickupDate":    pickupDate,
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func decodeOrders(t *testing.T, rec *httptest.ResponseRecorder) []servers.Order {
	t.Helper()
	var body []servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", nil, false)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerTestSuite) TestSwaggerDoc() {
	rec := suite.do(http.MethodGet, "/swagger/doc.json", nil, false)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Kakanin order tracking")
}

func (suite *ServerTestSuite) TestCatalog() {
	rec := suite.do(http.MethodGet, "/api/v1/catalog", nil, true)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var catalog servers.Catalog
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &catalog))

	suite.Len(catalog.Delicacies, 13)
	suite.Equal(servers.Choice{Code: "SINUKMANI", Name: "Sinukmani"}, catalog.Delicacies[0])
	suite.Len(catalog.ContainerSizes, 7)
	suite.Equal(servers.Choice{Code: "BILAO_12", Name: "12' Bilao"}, catalog.ContainerSizes[1])
	suite.Equal([]servers.Choice{
		{Code: "PENDING", Name: "Pending"},
		{Code: "IN_PROGRESS", Name: "In Progress"},
		{Code: "COMPLETED", Name: "Completed"},
		{Code: "REMOVED", Name: "Removed"},
	}, catalog.Statuses)

	rec = suite.do(http.MethodGet, "/api/v1/catalog", nil, false)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *ServerTestSuite) TestOrders_RequireBasicAuth() {
	rec := suite.do(http.MethodGet, "/api/v1/orders", nil, false)

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.NotEmpty(rec.Header().Get(echo.HeaderWWWAuthenticate))
	suite.Equal(http.StatusUnauthorized, decodeError(suite.T(), rec).Code)
}

func (suite *ServerTestSuite) TestLogin() {
	rec := suite.do(http.MethodPost, "/api/v1/login",
		servers.Credentials{Username: adminUsername, Password: adminPassword}, false)
	suite.Equal(http.StatusNoContent, rec.Code)

	rec = suite.do(http.MethodPost, "/api/v1/login",
		servers.Credentials{Username: adminUsername, Password: "wrong-password"}, false)
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal("Invalid username or password", decodeError(suite.T(), rec).Message)
}

func (suite *ServerTestSuite) TestCreateAndGetOrder() {
	id := suite.createOrder("SAPIN_SAPIN", "2024-05-03")

	rec := suite.do(http.MethodGet, "/api/v1/orders/"+id, nil, true)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var got servers.Order
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	suite.Equal(id, got.Id.String())
	suite.Equal("Sapin-Sapin", got.Delicacy)
	suite.Equal("12' Bilao", got.ContainerSize)
	suite.Equal(2, got.Quantity)
	suite.Equal("2024-05-03", got.PickupDate.Format("2006-01-02"))
	suite.Equal(servers.Pending, got.Status)
	suite.Equal("Maria Santos", got.Buyer.Name)
}

func (suite *ServerTestSuite) TestCreateOrder_Invalid() {
	tests := map[string]struct {
		mutate func(body map[string]any)
	}{
		"unknown delicacy": {
			mutate: func(body map[string]any) { body["delicacy"] = "Bibingka" },
		},
		"quantity above ten": {
			mutate: func(body map[string]any) { body["quantity"] = 11 },
		},
		"short contact number": {
			mutate: func(body map[string]any) { body["contactNumber"] = "0917" },
		},
		"missing pickup place": {
			mutate: func(body map[string]any) { delete(body, "pickupPlace") },
		},
		"malformed pickup date": {
			mutate: func(body map[string]any) { body["pickupDate"] = "05/03/2024" },
		},
	}

	for name, tt := range tests {
		suite.Run(name, func() {
			body := newOrderBody("Puto", "2024-05-03")
			tt.mutate(body)

			rec := suite.do(http.MethodPost, "/api/v1/orders", body, true)

			suite.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			suite.Equal(http.StatusBadRequest, decodeError(suite.T(), rec).Code)
		})
	}

	rec := suite.do(http.MethodGet, "/api/v1/orders", nil, true)
	suite.Empty(decodeOrders(suite.T(), rec))
}

func (suite *ServerTestSuite) TestHistory_SortedByPickupDate() {
	first := suite.createOrder("Puto", "2024-05-03")
	second := suite.createOrder("Maja", "2023-12-31")
	third := suite.createOrder("Palitaw", "2024-05-03")

	rec := suite.do(http.MethodGet, "/api/v1/orders/history", nil, true)
	suite.Require().Equal(http.StatusOK, rec.Code)
	history := decodeOrders(suite.T(), rec)
	suite.Require().Len(history, 3)
	suite.Equal([]string{second, first, third},
		[]string{history[0].Id.String(), history[1].Id.String(), history[2].Id.String()})

	rec = suite.do(http.MethodGet, "/api/v1/orders", nil, true)
	suite.Require().Equal(http.StatusOK, rec.Code)
	all := decodeOrders(suite.T(), rec)
	suite.Require().Len(all, 3)
	suite.Equal([]string{first, second, third},
		[]string{all[0].Id.String(), all[1].Id.String(), all[2].Id.String()})
}

func (suite *ServerTestSuite) TestGetOrder_NotFound() {
	rec := suite.do(http.MethodGet, "/api/v1/orders/1b4e28ba-2fa1-11d2-883f-0016d3cca427", nil, true)

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal(http.StatusNotFound, decodeError(suite.T(), rec).Code)
}

func (suite *ServerTestSuite) TestGetOrder_MalformedID() {
	rec := suite.do(http.MethodGet, "/api/v1/orders/not-a-uuid", nil, true)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestUpdateOrderStatus() {
	id := suite.createOrder("Kutsinta", "2024-05-03")
	path := "/api/v1/orders/" + id + "/status"

	rec := suite.do(http.MethodPut, path, servers.StatusUpdate{Status: "In Progress"}, true)
	suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodPut, path, servers.StatusUpdate{Status: "COMPLETED"}, true)
	suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodGet, "/api/v1/orders/"+id, nil, true)
	var got servers.Order
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	suite.Equal(servers.Completed, got.Status)

	// Completed is final.
	rec = suite.do(http.MethodPut, path, servers.StatusUpdate{Status: "Removed"}, true)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestUpdateOrderStatus_Errors() {
	id := suite.createOrder("Karioka", "2024-05-03")

	rec := suite.do(http.MethodPut, "/api/v1/orders/"+id+"/status", servers.StatusUpdate{Status: "Shipped"}, true)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPut, "/api/v1/orders/1b4e28ba-2fa1-11d2-883f-0016d3cca427/status",
		servers.StatusUpdate{Status: "Removed"}, true)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
