package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"barclube/internal/config"
	"barclube/internal/router"
	"barclube/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newAPI spins up the full engine against a seeded store and a throwaway
// static dir containing a single index.html.
func newAPI(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>bar clube</html>"), 0o644))

	st := store.New()
	require.NoError(t, st.Seed())

	cfg := &config.Config{Port: 0, Env: "development", StaticDir: staticDir}
	return router.New(cfg, st), st
}

func doForm(r *gin.Engine, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), "body: %s", w.Body.String())
	return m
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doForm(r, http.MethodPost, "/api/auth/login", "", url.Values{
		"email": {"admin@bar.local"},
		"senha": {"admin123"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	r, _ := newAPI(t)

	w := doGet(r, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["ok"])
}

func TestLoginWire(t *testing.T) {
	r, _ := newAPI(t)

	token := login(t, r)
	assert.Len(t, token, 43)

	w := doForm(r, http.MethodPost, "/api/auth/login", "", url.Values{
		"email": {"admin@bar.local"},
		"senha": {"nope"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, w)["error"])

	// Missing fields fail binding, not authentication.
	w = doForm(r, http.MethodPost, "/api/auth/login", "", url.Values{"email": {"admin@bar.local"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w)["error"])
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	r, _ := newAPI(t)

	w := doGet(r, "/api/tables", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, w)["error"])

	w = doGet(r, "/api/tables", "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// The whole MESA flow over the wire: open cash, open an order on table "1",
// add three beers, pay in cash, close, and watch the table free up.
func TestMesaOrderLifecycleWire(t *testing.T) {
	r, _ := newAPI(t)
	token := login(t, r)

	w := doForm(r, http.MethodPost, "/api/cash/open", token, url.Values{"valorInicial": {"10000"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Grab table "1" and the beer product ids from the API itself.
	w = doGet(r, "/api/tables", token)
	require.Equal(t, http.StatusOK, w.Code)
	var tables []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
	var tableID string
	for _, tb := range tables {
		if tb["nomeOuNumero"] == "1" {
			tableID = tb["id"].(string)
		}
	}
	require.NotEmpty(t, tableID)

	w = doGet(r, "/api/products", token)
	require.Equal(t, http.StatusOK, w.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	var beerID string
	for _, p := range products {
		if p["nome"] == "Cerveja Lata" {
			beerID = p["id"].(string)
		}
	}
	require.NotEmpty(t, beerID)

	w = doForm(r, http.MethodPost, "/api/orders", token, url.Values{
		"tipoIdentificacao": {"MESA"},
		"tableId":           {tableID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode(t, w)
	orderID := order["id"].(string)
	assert.Equal(t, "ABERTO", order["status"])
	require.NotNil(t, order["table"])
	assert.Equal(t, "1", order["table"].(map[string]any)["nomeOuNumero"])

	// Table is now occupied.
	w = doGet(r, "/api/tables", token)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
	for _, tb := range tables {
		if tb["id"] == tableID {
			assert.Equal(t, "OCUPADO", tb["status"])
		}
	}

	w = doForm(r, http.MethodPost, "/api/orders/"+orderID+"/items", token, url.Values{
		"productId":  {beerID},
		"quantidade": {"3"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decode(t, w)
	assert.Equal(t, float64(800), item["precoUnitario"])
	assert.Equal(t, float64(2400), item["precoTotal"])
	assert.Nil(t, item["canceladoEm"])

	// Stock dropped from 100 to 97.
	w = doGet(r, "/api/products", token)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	for _, p := range products {
		if p["id"] == beerID {
			estoque := p["estoque"].(map[string]any)
			assert.Equal(t, float64(97), estoque["quantidadeAtual"])
		}
	}

	w = doForm(r, http.MethodPost, "/api/orders/"+orderID+"/payments", token, url.Values{
		"metodo": {"DINHEIRO"},
		"valor":  {"2400"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doForm(r, http.MethodPost, "/api/orders/"+orderID+"/close", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	closed := decode(t, w)
	assert.Equal(t, "FECHADO", closed["status"])
	assert.Equal(t, float64(2400), closed["valorTotal"])

	w = doGet(r, "/api/tables", token)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
	for _, tb := range tables {
		if tb["id"] == tableID {
			assert.Equal(t, "LIVRE", tb["status"])
		}
	}

	// And the drawer reconciles: 10000 + 2400 counted exactly.
	w = doForm(r, http.MethodPost, "/api/cash/close", token, url.Values{"valorFinal": {"12400"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	fechamento := decode(t, w)
	assert.Equal(t, float64(12400), fechamento["expected"])
	assert.Equal(t, float64(0), fechamento["diff"])
}

func TestCashWire(t *testing.T) {
	r, _ := newAPI(t)
	token := login(t, r)

	// No session yet.
	w := doGet(r, "/api/cash/open", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))

	w = doForm(r, http.MethodPost, "/api/cash/open", token, url.Values{"valorInicial": {"5000"}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doForm(r, http.MethodPost, "/api/cash/open", token, url.Values{"valorInicial": {"5000"}})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CASH_REGISTER_ALREADY_OPEN", decode(t, w)["error"])

	// Unknown movement type is a binding failure.
	w = doForm(r, http.MethodPost, "/api/cash/adjust", token, url.Values{
		"type":  {"RETIRADA"},
		"valor": {"100"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w)["error"])

	w = doForm(r, http.MethodPost, "/api/cash/adjust", token, url.Values{
		"type":   {"REFORCO"},
		"valor":  {"100"},
		"motivo": {"fundo de troco"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["ok"])
}

func TestOrderErrorCodesWire(t *testing.T) {
	r, _ := newAPI(t)
	token := login(t, r)

	// Orders need an open cash session.
	w := doForm(r, http.MethodPost, "/api/orders", token, url.Values{
		"tipoIdentificacao": {"CLIENTE"},
		"nomeCliente":       {"Maria"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CASH_REGISTER_MUST_BE_OPEN", decode(t, w)["error"])

	w = doForm(r, http.MethodPost, "/api/cash/open", token, url.Values{"valorInicial": {"0"}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doForm(r, http.MethodPost, "/api/orders", token, url.Values{"tipoIdentificacao": {"BALCAO"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "ORDER_IDENTIFICATION_REQUIRED", decode(t, w)["error"])

	w = doGet(r, "/api/orders/ghost", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decode(t, w)["error"])
}

func TestUnknownAPIRouteIsJSON(t *testing.T) {
	r, _ := newAPI(t)

	w := doGet(r, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, w)["error"])
}

func TestStaticServing(t *testing.T) {
	r, _ := newAPI(t)

	w := doGet(r, "/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/index.html", w.Header().Get("Location"))

	w = doGet(r, "/index.html", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bar clube")

	w = doGet(r, "/missing.js", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", w.Body.String())

	w = doGet(r, "/../etc/passwd", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid path", w.Body.String())
}
