package devserver

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitpatil05/finlens/internal/client/models"
	"github.com/rohitpatil05/finlens/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New("test-secret", logging.NewNopLogger())
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	return out
}

func login(t *testing.T, s *Server, username, password string) string {
	t.Helper()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[map[string]string](t, resp)
	require.NotEmpty(t, out["access_token"])
	return out["access_token"]
}

func TestLogin_SeededUsers(t *testing.T) {
	s := newTestServer(t)
	assert.NotEmpty(t, login(t, s, "admin", "admin123"))
	assert.NotEmpty(t, login(t, s, "testuser", "password123"))
	// email works in place of the username
	assert.NotEmpty(t, login(t, s, "testuser@finlens.dev", "password123"))
}

func TestLogin_BadCredentials(t *testing.T) {
	s := newTestServer(t)
	form := url.Values{}
	form.Set("username", "testuser")
	form.Set("password", "wrong")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	out := decode[map[string]string](t, resp)
	assert.Equal(t, "Incorrect username or password", out["detail"])
}

func TestRegister_RoleFromUsername(t *testing.T) {
	s := newTestServer(t)

	resp := doJSON(t, s, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "newadmin", "email": "na@finlens.dev", "password": "pw",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[struct {
		User struct {
			Role models.Role `json:"role"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}](t, resp)
	assert.Equal(t, models.RoleAdmin, out.User.Role)
	assert.NotEmpty(t, out.AccessToken)

	resp = doJSON(t, s, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "plainuser", "password": "pw",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out2 := decode[struct {
		User struct {
			Role models.Role `json:"role"`
		} `json:"user"`
	}](t, resp)
	assert.Equal(t, models.RoleCA, out2.User.Role)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	s := newTestServer(t)
	resp := doJSON(t, s, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "testuser", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	s := newTestServer(t)

	resp := doJSON(t, s, http.MethodGet, "/api/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, s, http.MethodGet, "/api/clients", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestClients_CRUD(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s, "testuser", "password123")

	resp := doJSON(t, s, http.MethodGet, "/api/clients", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	seeded := decode[[]models.Client](t, resp)
	require.Len(t, seeded, 2)
	assert.Equal(t, 1, seeded[0].DocumentsCount, "seeded Acme has one document")
	assert.Equal(t, 1, seeded[0].ProcessedCount)

	resp = doJSON(t, s, http.MethodPost, "/api/clients", token, models.ClientInput{Name: "New Co"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.Client](t, resp)
	assert.Equal(t, "New Co", created.Name)

	resp = doJSON(t, s, http.MethodPut, "/api/clients/"+itoa(created.ID), token, models.ClientInput{Name: "New Co Ltd"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[models.Client](t, resp)
	assert.Equal(t, "New Co Ltd", updated.Name)

	resp = doJSON(t, s, http.MethodDelete, "/api/clients/"+itoa(created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, s, http.MethodGet, "/api/clients/"+itoa(created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClients_CreateRequiresName(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s, "testuser", "password123")

	resp := doJSON(t, s, http.MethodPost, "/api/clients", token, models.ClientInput{Email: "x@y.z"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteClient_DetachesDocuments(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s, "testuser", "password123")

	resp := doJSON(t, s, http.MethodGet, "/api/clients", token, nil)
	clients := decode[[]models.Client](t, resp)
	acme := clients[0]

	resp = doJSON(t, s, http.MethodGet, "/api/clients/"+itoa(acme.ID)+"/documents", token, nil)
	docs := decode[[]models.Document](t, resp)
	require.Len(t, docs, 1)
	docID := docs[0].ID

	resp = doJSON(t, s, http.MethodDelete, "/api/clients/"+itoa(acme.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, s, http.MethodGet, "/api/documents/"+itoa(docID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "documents survive their client")
	doc := decode[models.Document](t, resp)
	assert.Nil(t, doc.ClientID)
}

func uploadDoc(t *testing.T, s *Server, token, filename, title string) models.Document {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	if title != "" {
		require.NoError(t, w.WriteField("title", title))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[models.Document](t, resp)
}

func TestDocuments_UploadProcessAndStatus(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s, "testuser", "password123")

	doc := uploadDoc(t, s, token, "statement.pdf", "July statement")
	assert.Equal(t, "July statement", doc.Title)
	assert.Equal(t, models.StatusUploaded, doc.Status)

	resp := doJSON(t, s, http.MethodPost, "/api/documents/"+itoa(doc.ID)+"/process", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[models.AnalysisResult](t, resp)
	assert.Equal(t, doc.ID, res.DocumentID)
	assert.Equal(t, models.StatusCompleted, res.Status)
	assert.Greater(t, res.Score, float64(0))
	assert.Contains(t, string(res.Results), "cibilScore")

	resp = doJSON(t, s, http.MethodGet, "/api/documents/"+itoa(doc.ID)+"/status", token, nil)
	status := decode[map[string]any](t, resp)
	assert.Equal(t, string(models.StatusCompleted), status["status"])
}

func TestDocuments_ListFilteredByOwner(t *testing.T) {
	s := newTestServer(t)
	caToken := login(t, s, "testuser", "password123")
	adminToken := login(t, s, "admin", "admin123")

	resp := doJSON(t, s, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "othertester", "password": "pw",
	})
	other := decode[map[string]any](t, resp)["access_token"].(string)
	uploadDoc(t, s, other, "mine.pdf", "")

	resp = doJSON(t, s, http.MethodGet, "/api/documents", caToken, nil)
	caDocs := decode[[]models.Document](t, resp)
	assert.Len(t, caDocs, 2, "the accountant sees only the seeded documents they own")

	resp = doJSON(t, s, http.MethodGet, "/api/documents", adminToken, nil)
	adminDocs := decode[[]models.Document](t, resp)
	assert.Len(t, adminDocs, 3, "the admin sees everything")
}

func TestAnalysis_RequiresProcessedDocument(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s, "testuser", "password123")

	doc := uploadDoc(t, s, token, "raw.pdf", "")

	resp := doJSON(t, s, http.MethodGet, "/api/analysis/"+itoa(doc.ID)+"/cibil", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, s, http.MethodGet, "/api/analysis/999/cibil", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnalysis_DerivedViews(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s, "testuser", "password123")

	doc := uploadDoc(t, s, token, "statement.pdf", "")
	resp := doJSON(t, s, http.MethodPost, "/api/documents/"+itoa(doc.ID)+"/process", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, s, http.MethodGet, "/api/analysis/"+itoa(doc.ID)+"/cibil", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cibil := decode[models.CibilScore](t, resp)
	assert.GreaterOrEqual(t, cibil.Score, 700)

	resp = doJSON(t, s, http.MethodGet, "/api/analysis/"+itoa(doc.ID)+"/bank-statement", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stmt := decode[models.BankStatement](t, resp)
	assert.Greater(t, stmt.TotalCredits, float64(0))
	assert.Len(t, stmt.Monthly, 3)

	resp = doJSON(t, s, http.MethodGet, "/api/analysis/"+itoa(doc.ID)+"/tables", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tables := decode[[]models.Table](t, resp)
	require.Len(t, tables, 2)
	assert.Equal(t, "Monthly totals", tables[0].Title)

	resp = doJSON(t, s, http.MethodPost, "/api/analysis/"+itoa(doc.ID)+"/chat", token, models.ChatMessage{Message: "score?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	chat := decode[models.ChatResponse](t, resp)
	assert.Contains(t, chat.Message, "score?")
}

func TestAnalysis_DownloadSetsDisposition(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s, "testuser", "password123")

	doc := uploadDoc(t, s, token, "statement.pdf", "")
	resp := doJSON(t, s, http.MethodPost, "/api/documents/"+itoa(doc.ID)+"/process", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, s, http.MethodGet, "/api/analysis/"+itoa(doc.ID)+"/download?format=txt", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "FinLens analysis report")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
