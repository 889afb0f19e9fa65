package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"jasa-service/internal/config"
	"jasa-service/internal/database"
	"jasa-service/internal/database/dbtest"
	"jasa-service/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type obj = map[string]any

type testAPI struct {
	t         *testing.T
	router    *gin.Engine
	rootToken string
}

func newAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		SessionSecret:     "test-secret",
		TokenTTL:          time.Hour,
		PasswordMinLength: 8,
	}
	db := dbtest.Open(t)
	require.NoError(t, database.SeedAdmin(db, "root", "root@example.com", "R00t-Passw0rd"))

	a := &testAPI{t: t, router: server.NewRouter(cfg, db)}
	w := a.request(http.MethodPost, "/api/login", "", obj{"username": "root", "password": "R00t-Passw0rd"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	a.rootToken = decode[obj](t, w)["data"].(obj)["token"].(string)
	return a
}

func (a *testAPI) request(method, path, token string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// normalize passes v through JSON so numbers compare as float64.
func normalize(t *testing.T, v obj) obj {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out obj
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func idOf(t *testing.T, m obj) uint {
	t.Helper()
	id, ok := m["id"].(float64)
	require.True(t, ok, "missing id in %v", m)
	return uint(id)
}

// register signs up a new account. Admin accounts are registered with the
// root admin's token, the only way role flags are accepted.
func (a *testAPI) register(username string, admin bool) (obj, string) {
	a.t.Helper()
	var token string
	if admin {
		token = a.rootToken
	}
	w := a.request(http.MethodPost, "/api/register", token, obj{
		"username":         username,
		"email":            username + "@example.com",
		"password1":        "Abc12345",
		"password2":        "Abc12345",
		"first_name":       "Nama",
		"last_name":        "Lengkap",
		"is_admin_service": admin,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	body := decode[obj](a.t, w)
	data := body["data"].(obj)
	require.Equal(a.t, admin, data["is_admin_service"])
	return data, body["token"].(string)
}

func (a *testAPI) create(token, path string, payload obj) obj {
	a.t.Helper()
	w := a.request(http.MethodPost, path, token, payload)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[obj](a.t, w)
}

func TestHealth(t *testing.T) {
	a := newAPI(t)
	w := a.request(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	a := newAPI(t)

	for _, token := range []string{"", "not-a-real-token"} {
		w := a.request(http.MethodGet, "/api/customers", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"detail":"Authentication credentials were not provided or are invalid."}`, w.Body.String())
	}
}

func TestRegisterAndLogin(t *testing.T) {
	a := newAPI(t)
	data, token := a.register("sinta", false)
	assert.Equal(t, "sinta", data["username"])
	assert.Equal(t, true, data["is_active"])
	assert.NotContains(t, data, "password1")
	assert.NotContains(t, data, "password_hash")

	w := a.request(http.MethodPost, "/api/login", "", obj{"username": "sinta", "password": "Abc12345"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode[obj](t, w)
	assert.Equal(t, "Login berhasil.", body["message"])
	login := body["data"].(obj)
	assert.Equal(t, token, login["token"])
	assert.Equal(t, "sinta@example.com", login["email"])
	assert.Equal(t, false, login["is_admin_service"])

	w = a.request(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sinta", decode[obj](t, w)["username"])
}

func TestRegisterPasswordMismatch(t *testing.T) {
	a := newAPI(t)
	w := a.request(http.MethodPost, "/api/register", "", obj{
		"username":   "joko",
		"email":      "joko@example.com",
		"password1":  "Abc12345",
		"password2":  "Abc12346",
		"first_name": "Joko",
		"last_name":  "Widodo",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":400,"data":{"password":["Kata sandi dan Ulang kata sandi tidak sama."]}}`, w.Body.String())

	w = a.request(http.MethodPost, "/api/login", "", obj{"username": "joko", "password": "Abc12345"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginErrors(t *testing.T) {
	a := newAPI(t)
	a.register("rina", false)

	w := a.request(http.MethodPost, "/api/login", "", obj{"username": "rina"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Mohon isi nama pengguna dan kata sandi.", decode[obj](t, w)["message"])

	w = a.request(http.MethodPost, "/api/login", "", obj{"username": "rina", "password": "salah123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Username atau password salah.", decode[obj](t, w)["message"])
}

func TestSessionCookieAuthenticates(t *testing.T) {
	a := newAPI(t)
	a.register("dewi", false)

	w := a.request(http.MethodPost, "/api/login", "", obj{"username": "dewi", "password": "Abc12345"})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = a.request(http.MethodGet, "/api/me", "", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "dewi", decode[obj](t, w)["username"])

	w = a.request(http.MethodPost, "/api/logout", "", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	w = a.request(http.MethodGet, "/api/me", "", nil, w.Result().Cookies()...)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoundTripEveryKind(t *testing.T) {
	a := newAPI(t)
	admin, token := a.register("admin1", true)

	customer := a.create(token, "/api/customers", obj{
		"name": "CV Maju", "customer_type": "Business", "contact": "0215551234",
		"email": "maju@example.com", "address": "Jl. Merdeka 1",
	})
	device := a.create(token, "/api/devices", obj{
		"customer": idOf(t, customer), "brand": "Lenovo", "model": "T480",
		"serial_number": "PF1ABC", "specs": "16GB RAM",
	})
	tech := a.create(token, "/api/technicians", obj{
		"user_id": idOf(t, admin), "level": "Senior", "specialization": "Motherboard",
	})
	assert.Equal(t, "Nama Lengkap", tech["user"])
	serviceType := a.create(token, "/api/service_types", obj{
		"name": "Ganti LCD", "category": "Hardware", "difficulty": "Medium", "price": 250000.5,
	})
	order := a.create(token, "/api/orders", obj{
		"customer_id": idOf(t, customer), "device_id": idOf(t, device),
		"technician_id": idOf(t, tech), "service_type_id": idOf(t, serviceType),
		"status": "In Progress", "priority": "High",
	})
	part := a.create(token, "/api/spare_parts", obj{
		"name": "LCD 14", "compatible_models": "T480,T470", "price": 900000,
	})

	cases := []struct {
		path    string
		payload obj
	}{
		{"/api/service_devices", obj{
			"code": "SRV-001", "customer_name": "Pak Ahmad", "device_type": "Laptop",
			"brand": "Acer", "damage_description": "Mati total",
			"service_status": "Proses", "status": "Aktif",
		}},
		{"/api/customers", obj{"name": "Dinas PU", "customer_type": "Government", "contact": "021777"}},
		{"/api/devices", obj{"customer": idOf(t, customer), "brand": "HP", "model": "240 G8", "serial_number": "5CD1", "specs": ""}},
		{"/api/service_types", obj{"name": "Instal OS", "category": "Software", "difficulty": "Low", "price": 100000}},
		{"/api/orders", obj{
			"customer_id": idOf(t, customer), "device_id": idOf(t, device),
			"service_type_id": idOf(t, serviceType), "technician_id": nil,
			"status": "Pending", "priority": "Low",
		}},
		{"/api/spare_parts", obj{"name": "Baterai", "compatible_models": "T480", "price": 450000}},
		{"/api/inventories", obj{"spare_part": idOf(t, part), "stock": 10, "low_stock_threshold": 2}},
		{"/api/payments", obj{"order_id": idOf(t, order), "amount": 250000.5, "method": "E-Wallet"}},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			created := a.create(token, tc.path, tc.payload)
			w := a.request(http.MethodGet, fmt.Sprintf("%s/%d", tc.path, idOf(t, created)), token, nil)
			require.Equal(t, http.StatusOK, w.Code)
			got := decode[obj](t, w)

			want := normalize(t, tc.payload)
			for k, v := range want {
				assert.Equal(t, v, got[k], "field %s", k)
			}
		})
	}

	// technician round trip, checked through its write field
	w := a.request(http.MethodGet, fmt.Sprintf("/api/technicians/%d", idOf(t, tech)), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[obj](t, w)
	assert.Equal(t, float64(idOf(t, admin)), got["user_id"])
	assert.Equal(t, "Senior", got["level"])

	// reads expand relations
	w = a.request(http.MethodGet, fmt.Sprintf("/api/orders/%d", idOf(t, order)), token, nil)
	got = decode[obj](t, w)
	assert.Equal(t, "CV Maju", got["customer"].(obj)["name"])
	assert.Equal(t, "PF1ABC", got["device"].(obj)["serial_number"])
	assert.Equal(t, "Nama Lengkap", got["technician"].(obj)["user"])
	assert.Equal(t, "Ganti LCD", got["service_type"].(obj)["name"])

	w = a.request(http.MethodGet, "/api/payments", token, nil)
	payments := decode[[]obj](t, w)
	require.Len(t, payments, 1)
	assert.Equal(t, "In Progress", payments[0]["order"].(obj)["status"])
}

func TestNotFoundResponses(t *testing.T) {
	a := newAPI(t)
	_, token := a.register("admin2", true)

	for _, path := range []string{"/api/customers/999", "/api/customers/abc", "/api/orders/-1", "/api/payments/0"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			w := a.request(method, path, token, obj{})
			assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", method, path)
			assert.JSONEq(t, `{"message":"Data tidak ditemukan."}`, w.Body.String())
		}
	}
}

func TestDeleteThenNotFound(t *testing.T) {
	a := newAPI(t)
	_, token := a.register("admin3", true)
	part := a.create(token, "/api/spare_parts", obj{"name": "Kipas", "price": 75000})
	path := fmt.Sprintf("/api/spare_parts/%d", idOf(t, part))

	w := a.request(http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Data berhasil dihapus."}`, w.Body.String())

	w = a.request(http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func seedOrder(t *testing.T, a *testAPI, token string, techUser obj) (order, tech obj) {
	t.Helper()
	customer := a.create(token, "/api/customers", obj{"name": "Ibu Sari", "customer_type": "Individual", "contact": "0857"})
	device := a.create(token, "/api/devices", obj{"customer": idOf(t, customer), "brand": "Samsung", "model": "A52", "serial_number": "R58"})
	serviceType := a.create(token, "/api/service_types", obj{"name": "Ganti Baterai", "category": "Hardware", "difficulty": "Low", "price": 120000})
	tech = a.create(token, "/api/technicians", obj{"user_id": idOf(t, techUser), "level": "Junior", "specialization": "HP"})
	order = a.create(token, "/api/orders", obj{
		"customer_id": idOf(t, customer), "device_id": idOf(t, device),
		"service_type_id": idOf(t, serviceType), "technician_id": idOf(t, tech),
	})
	return order, tech
}

func TestOrderDefaultsAndPartialUpdate(t *testing.T) {
	a := newAPI(t)
	admin, token := a.register("admin4", true)
	order, tech := seedOrder(t, a, token, admin)
	assert.Equal(t, "Pending", order["status"])
	assert.Equal(t, "Normal", order["priority"])

	path := fmt.Sprintf("/api/orders/%d", idOf(t, order))
	w := a.request(http.MethodPut, path, token, obj{"status": "Completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[obj](t, w)
	assert.Equal(t, "Completed", got["status"])
	assert.Equal(t, "Normal", got["priority"])
	assert.Equal(t, order["customer_id"], got["customer_id"])
	assert.Equal(t, order["device_id"], got["device_id"])
	assert.Equal(t, float64(idOf(t, tech)), got["technician_id"])

	w = a.request(http.MethodPatch, path, token, obj{"technician_id": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got = decode[obj](t, w)
	assert.Nil(t, got["technician_id"])
	assert.Nil(t, got["technician"])
	assert.Equal(t, "Completed", got["status"])
}

func TestDeleteTechnicianKeepsOrder(t *testing.T) {
	a := newAPI(t)
	admin, token := a.register("admin5", true)
	order, tech := seedOrder(t, a, token, admin)

	w := a.request(http.MethodDelete, fmt.Sprintf("/api/technicians/%d", idOf(t, tech)), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = a.request(http.MethodGet, fmt.Sprintf("/api/orders/%d", idOf(t, order)), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[obj](t, w)
	assert.Nil(t, got["technician_id"])
	assert.Nil(t, got["technician"])
}

func TestDeleteCustomerCascadesOverHTTP(t *testing.T) {
	a := newAPI(t)
	admin, token := a.register("admin6", true)
	order, _ := seedOrder(t, a, token, admin)
	a.create(token, "/api/payments", obj{"order_id": idOf(t, order), "amount": 120000, "method": "Cash"})

	w := a.request(http.MethodDelete, fmt.Sprintf("/api/customers/%v", order["customer_id"]), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, path := range []string{"/api/devices", "/api/orders", "/api/payments"} {
		w := a.request(http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[[]obj](t, w), path)
	}
}

func TestValidationErrors(t *testing.T) {
	a := newAPI(t)
	_, token := a.register("admin7", true)

	w := a.request(http.MethodPost, "/api/customers", token, obj{"name": "X", "customer_type": "Alien", "contact": "1", "email": "bukan-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"customer_type":["\"Alien\" is not a valid choice."],"email":["Enter a valid email address."]}`, w.Body.String())

	w = a.request(http.MethodPost, "/api/devices", token, obj{"customer": 999, "brand": "HP", "model": "X", "serial_number": "1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"customer":["Invalid pk \"999\" - object does not exist."]}`, w.Body.String())

	w = a.request(http.MethodPost, "/api/payments", token, obj{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decode[map[string][]string](t, w)
	assert.Equal(t, []string{"This field is required."}, errs["order_id"])
	assert.Equal(t, []string{"This field is required."}, errs["amount"])
	assert.Equal(t, []string{"This field is required."}, errs["method"])

	w = a.request(http.MethodPost, "/api/inventories", token, obj{"spare_part": "satu", "stock": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"A valid integer is required."}, decode[map[string][]string](t, w)["spare_part"])

	w = a.request(http.MethodPost, "/api/spare_parts", token, obj{"name": "  ", "price": -1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string][]string](t, w), "price")
}

func TestServiceDeviceDefaultsFiltersAndStamp(t *testing.T) {
	a := newAPI(t)
	admin, token := a.register("admin8", true)

	first := a.create(token, "/api/service_devices", obj{
		"code": "SRV-1", "customer_name": "Andi", "device_type": "Printer",
		"brand": "Epson", "damage_description": "Paper jam",
	})
	assert.Equal(t, "Masuk", first["service_status"])
	assert.Equal(t, "Aktif", first["status"])
	assert.Equal(t, float64(idOf(t, admin)), first["user_create"])

	a.create(token, "/api/service_devices", obj{
		"code": "SRV-2", "customer_name": "Budi", "device_type": "Laptop",
		"brand": "Dell", "damage_description": "Engsel patah", "service_status": "Selesai",
	})

	w := a.request(http.MethodGet, "/api/service_devices", token, nil)
	all := decode[[]obj](t, w)
	require.Len(t, all, 2)
	assert.Equal(t, "SRV-2", all[0]["code"])

	w = a.request(http.MethodGet, "/api/service_devices?service_status=Masuk", token, nil)
	filtered := decode[[]obj](t, w)
	require.Len(t, filtered, 1)
	assert.Equal(t, "SRV-1", filtered[0]["code"])

	w = a.request(http.MethodGet, "/api/service_devices?q=dell", token, nil)
	filtered = decode[[]obj](t, w)
	require.Len(t, filtered, 1)
	assert.Equal(t, "SRV-2", filtered[0]["code"])
}

func TestInventoryLowStock(t *testing.T) {
	a := newAPI(t)
	_, token := a.register("admin9", true)
	p1 := a.create(token, "/api/spare_parts", obj{"name": "RAM 8GB", "price": 400000})
	p2 := a.create(token, "/api/spare_parts", obj{"name": "SSD 256", "price": 500000})

	low := a.create(token, "/api/inventories", obj{"spare_part": idOf(t, p1), "stock": 5})
	assert.Equal(t, float64(5), low["low_stock_threshold"])
	assert.Equal(t, true, low["is_low_stock"])
	a.create(token, "/api/inventories", obj{"spare_part": idOf(t, p2), "stock": 20})

	w := a.request(http.MethodGet, "/api/inventories?low_stock=true", token, nil)
	rows := decode[[]obj](t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(idOf(t, p1)), rows[0]["spare_part"])
}

func TestConcurrentInventoryCreate(t *testing.T) {
	a := newAPI(t)
	_, token := a.register("admin10", true)
	part := a.create(token, "/api/spare_parts", obj{"name": "Charger", "price": 150000})

	partID := idOf(t, part)

	const n = 8
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = a.request(http.MethodPost, "/api/inventories", token, obj{"spare_part": partID, "stock": i}).Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
			continue
		}
		assert.Equal(t, http.StatusBadRequest, code)
	}
	assert.Equal(t, 1, created)

	w := a.request(http.MethodGet, "/api/inventories", token, nil)
	assert.Len(t, decode[[]obj](t, w), 1)
}

func TestAccountAdministration(t *testing.T) {
	a := newAPI(t)
	_, adminToken := a.register("boss", true)
	staff, staffToken := a.register("staff", false)
	path := fmt.Sprintf("/api/accounts/%d", idOf(t, staff))

	w := a.request(http.MethodPut, path, staffToken, obj{"is_admin_service": true})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.request(http.MethodPut, path, adminToken, obj{"is_technician": true, "is_active": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[obj](t, w)
	assert.Equal(t, true, got["is_technician"])
	assert.Equal(t, false, got["is_active"])

	w = a.request(http.MethodGet, "/api/me", staffToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.request(http.MethodPost, "/api/login", "", obj{"username": "staff", "password": "Abc12345"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Status pengguna tidak aktif.", decode[obj](t, w)["message"])

	w = a.request(http.MethodPut, "/api/accounts/999", adminToken, obj{"first_name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuditTrail(t *testing.T) {
	a := newAPI(t)
	_, token := a.register("auditor", true)
	part := a.create(token, "/api/spare_parts", obj{"name": "Thermal paste", "price": 25000})
	w := a.request(http.MethodPut, fmt.Sprintf("/api/spare_parts/%d", idOf(t, part)), token, obj{"price": 30000})
	require.Equal(t, http.StatusOK, w.Code)

	w = a.request(http.MethodGet, "/api/audit_logs?entity=spare_part", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode[[]obj](t, w)
	require.Len(t, logs, 2)
	assert.Equal(t, "update", logs[0]["action"])
	assert.Equal(t, "create", logs[1]["action"])
	assert.Equal(t, "auditor", logs[0]["username"])
}

func TestPaymentFilters(t *testing.T) {
	a := newAPI(t)
	admin, token := a.register("kasir", true)
	order, _ := seedOrder(t, a, token, admin)

	a.create(token, "/api/payments", obj{"order_id": idOf(t, order), "amount": 50000, "method": "Cash"})
	last := a.create(token, "/api/payments", obj{"order_id": idOf(t, order), "amount": 70000, "method": "Transfer"})

	w := a.request(http.MethodGet, fmt.Sprintf("/api/payments?order_id=%d", idOf(t, order)), token, nil)
	rows := decode[[]obj](t, w)
	require.Len(t, rows, 2)
	assert.Equal(t, last["id"], rows[0]["id"])

	w = a.request(http.MethodGet, "/api/payments?method=Cash", token, nil)
	rows = decode[[]obj](t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(50000), rows[0]["amount"])

	w = a.request(http.MethodGet, "/api/payments?order_id=999", token, nil)
	assert.Empty(t, decode[[]obj](t, w))

	w = a.request(http.MethodGet, "/api/payments?order_id=abc", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]obj](t, w), 2)
}

func TestAnonymousRegistrationCannotClaimRoles(t *testing.T) {
	a := newAPI(t)
	victim, victimToken := a.register("korban", false)

	w := a.request(http.MethodPost, "/api/register", "", obj{
		"username": "mallory", "email": "mallory@example.com",
		"password1": "Abc12345", "password2": "Abc12345",
		"first_name": "Mal", "last_name": "Lory",
		"is_admin_service": true, "is_technician": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode[obj](t, w)
	data := body["data"].(obj)
	assert.Equal(t, false, data["is_admin_service"])
	assert.Equal(t, false, data["is_technician"])
	token := body["token"].(string)

	w = a.request(http.MethodPut, fmt.Sprintf("/api/accounts/%d", idOf(t, victim)), token, obj{"is_active": false})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = a.request(http.MethodGet, "/api/audit_logs", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.request(http.MethodGet, "/api/me", victimToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[obj](t, w)["is_active"])
}

func TestSessionCookieCannotWrite(t *testing.T) {
	a := newAPI(t)
	a.register("eka", false)

	w := a.request(http.MethodPost, "/api/login", "", obj{"username": "eka", "password": "Abc12345"})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)

	payload := obj{"name": "Toko Palsu", "customer_type": "Business", "contact": "0"}
	w = a.request(http.MethodPost, "/api/customers", "", payload, cookies...)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = a.request(http.MethodDelete, "/api/customers/1", "", nil, cookies...)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.request(http.MethodGet, "/api/customers", "", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]obj](t, w))
}

func TestMoneyFieldsRejectExtraDecimals(t *testing.T) {
	a := newAPI(t)
	_, token := a.register("akuntan", true)

	w := a.request(http.MethodPost, "/api/spare_parts", token, obj{"name": "Kabel", "price": 12.345})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Ensure that there are no more than 2 decimal places."},
		decode[map[string][]string](t, w)["price"])

	w = a.request(http.MethodPost, "/api/service_types", token, obj{
		"name": "Servis", "category": "Hardware", "difficulty": "Low", "price": 123456789,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string][]string](t, w), "price")

	part := a.create(token, "/api/spare_parts", obj{"name": "Kabel", "price": 12.35})
	assert.Equal(t, 12.35, part["price"])
}
