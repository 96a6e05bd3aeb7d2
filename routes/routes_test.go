package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/configs"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/mailer"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/ws"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type apiClient struct {
	t    *testing.T
	base string
	http *http.Client
}

func (c *apiClient) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer res.Body.Close()

	out := map[string]any{}
	require.NoError(c.t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func newServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true

	cfg := &configs.Config{
		DBDriver:   "sqlite",
		DBSource:   filepath.Join(t.TempDir(), "api.db"),
		JWTSecret:  "test-secret",
		SessionTTL: time.Hour,
		CookieName: "ff_session",
		UploadDir:  t.TempDir(),
	}
	db, err := configs.ConnectionDB(cfg)
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	log := zap.NewNop()
	r := NewRouter(Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Mailer: mailer.LogSender{Log: log},
		Hub:    ws.NewOrderHub(log),
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, db
}

func newClient(t *testing.T, srv *httptest.Server) *apiClient {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &apiClient{t: t, base: srv.URL, http: &http.Client{Jar: jar}}
}

func TestGuestCheckoutAfterRegister(t *testing.T) {
	srv, db := newServer(t)
	require.NoError(t, db.Create(&entity.MenuItem{
		ItemID: "p1", Name: "Margherita", Price: decimal.RequireFromString("13.99"),
		Category: "pizza", Restaurant: "Pizza Paradise",
	}).Error)
	c := newClient(t, srv)

	status, body := c.do(http.MethodPost, "/api/cart/add", gin.H{"id": "p1", "quantity": 2})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Margherita added to cart!", body["message"])

	status, body = c.do(http.MethodPost, "/api/cart/add", gin.H{"id": "nope", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])

	status, body = c.do(http.MethodPost, "/api/auth/register", gin.H{
		"name": "Ana", "email": "ana@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status, body)
	assert.NotEmpty(t, body["token"])

	_, body = c.do(http.MethodGet, "/api/cart", nil)
	items := body["items"].([]any)
	require.Len(t, items, 1, "guest cart follows the new account")
	assert.EqualValues(t, 2, items[0].(map[string]any)["quantity"])

	_, body = c.do(http.MethodGet, "/api/auth/profile", nil)
	assert.Equal(t, true, body["logged_in"])

	status, body = c.do(http.MethodPost, "/api/orders", gin.H{
		"name": "Ana", "phone": "555-0100", "address": "1 Main St", "city": "Springfield", "zip": "12345",
	})
	require.Equal(t, http.StatusCreated, status, body)
	order := body["order"].(map[string]any)
	assert.Equal(t, "preparing", order["status"])
	assert.InDelta(t, 27.98, order["subtotal"], 0.001)
	assert.InDelta(t, 4.99, order["delivery_fee"], 0.001)
	assert.InDelta(t, 2.24, order["tax"], 0.001)
	assert.InDelta(t, 35.21, order["total"], 0.001)

	_, body = c.do(http.MethodGet, "/api/cart", nil)
	assert.Empty(t, body["items"])

	status, body = c.do(http.MethodPost, "/api/orders", gin.H{"name": "Ana"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Cart is empty", body["message"])

	_, body = c.do(http.MethodGet, "/api/orders", nil)
	assert.Len(t, body["orders"], 1)

	status, _ = c.do(http.MethodGet, "/api/orders/"+order["order_id"].(string), nil)
	assert.Equal(t, http.StatusOK, status)

	other := newClient(t, srv)
	status, _ = other.do(http.MethodGet, "/api/orders/"+order["order_id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, status, "orders are private to their owner")
}

func TestAdminRoutesRequireRole(t *testing.T) {
	srv, _ := newServer(t)

	anon := newClient(t, srv)
	status, body := anon.do(http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Please login first", body["message"])

	user := newClient(t, srv)
	status, _ = user.do(http.MethodPost, "/api/auth/register", gin.H{
		"name": "Bo", "email": "bo@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = user.do(http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusForbidden, status)
}

// docID reads the "_id" the admin console uses to address a row.
func docID(t *testing.T, row any) string {
	t.Helper()
	id, ok := row.(map[string]any)["_id"].(float64)
	require.True(t, ok, "row has no _id: %v", row)
	return strconv.Itoa(int(id))
}

func TestAdminConsoleContract(t *testing.T) {
	srv, db := newServer(t)
	require.NoError(t, db.Create(&entity.MenuItem{
		ItemID: "p1", Name: "Margherita", Price: decimal.RequireFromString("13.99"),
		Category: "pizza", Restaurant: "Pizza Paradise",
	}).Error)

	admin := newClient(t, srv)
	status, _ := admin.do(http.MethodPost, "/api/auth/register", gin.H{
		"name": "Root", "email": "root@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status)
	require.NoError(t, db.Model(&entity.User{}).Where("email = ?", "root@example.com").
		Update("role", entity.RoleAdmin).Error)

	bo := newClient(t, srv)
	status, _ = bo.do(http.MethodPost, "/api/auth/register", gin.H{
		"name": "Bo", "email": "bo@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = bo.do(http.MethodPost, "/api/cart/add", gin.H{"id": "p1", "quantity": 1})
	require.Equal(t, http.StatusOK, status)
	status, body := bo.do(http.MethodPost, "/api/orders", gin.H{
		"name": "Bo", "phone": "555-0101", "address": "2 Main St", "city": "Springfield", "zip": "12345",
	})
	require.Equal(t, http.StatusCreated, status, body)
	orderID := body["order"].(map[string]any)["order_id"]

	// The promoted account's token still says "user"; the stored role wins.
	status, body = admin.do(http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, status, body)
	recent := body["recent_orders"].([]any)
	require.Len(t, recent, 1)
	assert.Equal(t, orderID, recent[0].(map[string]any)["order_id"])
	assert.NotContains(t, body["stats"], "recent_orders")
	assert.EqualValues(t, 1, body["stats"].(map[string]any)["total_orders"])

	_, body = admin.do(http.MethodGet, "/api/admin/users?search=bo@", nil)
	users := body["users"].([]any)
	require.Len(t, users, 1)
	assert.EqualValues(t, 1, users[0].(map[string]any)["order_count"])
	boID := docID(t, users[0])

	status, body = admin.do(http.MethodPut, "/api/admin/users/"+boID+"/role", gin.H{"role": entity.RoleAdmin})
	require.Equal(t, http.StatusOK, status, body)
	status, _ = bo.do(http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusOK, status, "promotion applies to the existing session")

	status, _ = admin.do(http.MethodPut, "/api/admin/users/"+boID+"/role", gin.H{"role": entity.RoleUser})
	require.Equal(t, http.StatusOK, status)
	status, _ = bo.do(http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusForbidden, status, "demotion applies to the existing session")

	_, body = admin.do(http.MethodGet, "/api/admin/menu", nil)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	status, body = admin.do(http.MethodDelete, "/api/admin/menu/"+docID(t, items[0]), nil)
	require.Equal(t, http.StatusOK, status, body)
	_, body = admin.do(http.MethodGet, "/api/admin/menu", nil)
	assert.Empty(t, body["items"])
}

func TestLoginFailureAndLogout(t *testing.T) {
	srv, _ := newServer(t)
	c := newClient(t, srv)

	status, _ := c.do(http.MethodPost, "/api/auth/register", gin.H{
		"name": "Ana", "email": "ana@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status)
	status, body := c.do(http.MethodPost, "/api/auth/register", gin.H{
		"name": "Ana", "email": "ana@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email already registered", body["message"])

	status, _ = c.do(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, status)
	_, body = c.do(http.MethodGet, "/api/auth/profile", nil)
	assert.Equal(t, false, body["logged_in"])

	status, body = c.do(http.MethodPost, "/api/auth/login", gin.H{"email": "ana@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body["message"])

	status, body = c.do(http.MethodPost, "/api/auth/login", gin.H{"email": "ana@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, status)

	bearer := &apiClient{t: t, base: srv.URL, http: &http.Client{Transport: bearerTransport(body["token"].(string))}}
	_, body = bearer.do(http.MethodGet, "/api/auth/profile", nil)
	assert.Equal(t, true, body["logged_in"], "token works without the cookie")
}

type bearerTransport string

func (b bearerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("Authorization", "Bearer "+string(b))
	return http.DefaultTransport.RoundTrip(r)
}
