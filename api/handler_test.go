package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/farkinca1971/office-management-sub003/api"
	"github.com/farkinca1971/office-management-sub003/config"
	"github.com/farkinca1971/office-management-sub003/pkg/logger"
	"github.com/farkinca1971/office-management-sub003/storage/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jaswdr/faker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fake = faker.New()

func newTestServer(t *testing.T) (sqlmock.Sqlmock, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{
		ServiceName: "office_management_test",
		Environment: config.TestMode,
	}

	log := logger.NewLogger(cfg.ServiceName, logger.LevelError)
	router := api.SetUpRouter(cfg, log, mysql.NewMysqlWithDB(db))

	return mock, router
}

// newRegexpTestServer matches expectations as regular expressions instead of
// literal statements, for paths whose statement text is nondeterministic.
func newRegexpTestServer(t *testing.T) (sqlmock.Sqlmock, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{
		ServiceName: "office_management_test",
		Environment: config.TestMode,
	}

	log := logger.NewLogger(cfg.ServiceName, logger.LevelError)
	router := api.SetUpRouter(cfg, log, mysql.NewMysqlWithDB(db))

	return mock, router
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	resp := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestGetSingle(t *testing.T) {
	mock, router := newTestServer(t)

	firstName := fake.Person().FirstName()

	mock.ExpectQuery("SELECT em.*\nFROM `employees` em\nWHERE em.`id` = 5").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name"}).AddRow(5, []byte(firstName)))

	rec := doRequest(router, http.MethodGet, "/v1/objects/employees/5", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["success"])

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "single row should flatten to an object")
	assert.Equal(t, firstName, data["first_name"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetListWithFilters(t *testing.T) {
	mock, router := newTestServer(t)

	mock.ExpectQuery("SELECT em.*\nFROM `employees` em\nWHERE em.`is_active` = 1\nORDER BY `salary` DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	rec := doRequest(router, http.MethodGet, "/v1/objects/employees?is_active=true&sort=salary&dir=desc", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	_, ok := resp["data"].([]any)
	assert.True(t, ok, "several rows stay an array")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	mock, router := newTestServer(t)

	firstName := fake.Person().FirstName()
	escaped := strings.ReplaceAll(firstName, "'", "''")

	mock.ExpectExec(fmt.Sprintf(
		"INSERT INTO `employees` (`id`, `first_name`) VALUES ('e-1', '%s')", escaped,
	)).WillReturnResult(sqlmock.NewResult(0, 1))

	body := fmt.Sprintf(`{"id": "e-1", "first_name": %q}`, firstName)
	rec := doRequest(router, http.MethodPost, "/v1/objects/employees", body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["success"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDefaultsMissingId(t *testing.T) {
	mock, router := newRegexpTestServer(t)

	// The id is generated, so only its UUID shape can be pinned down; it is
	// appended after the body's own fields.
	mock.ExpectExec(
		"INSERT INTO `employees` \\(`first_name`\\, `id`\\) " +
			"VALUES \\('Ann'\\, '[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}'\\)",
	).WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(router, http.MethodPost, "/v1/objects/employees", `{"first_name": "Ann"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["success"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithFieldProjection(t *testing.T) {
	mock, router := newTestServer(t)

	mock.ExpectQuery("SELECT em.`first_name`, em.`last_name`\nFROM `employees` em").
		WillReturnRows(sqlmock.NewRows([]string{"first_name", "last_name"}).AddRow([]byte("Ann"), []byte("Lee")))

	rec := doRequest(router, http.MethodGet, "/v1/objects/employees?fields=first_name,last_name", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithRawOrder(t *testing.T) {
	mock, router := newTestServer(t)

	mock.ExpectQuery("SELECT em.*\nFROM `employees` em\nORDER BY em.created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	rec := doRequest(router, http.MethodGet, "/v1/objects/employees?order=em.created_at%20DESC", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithOrderList(t *testing.T) {
	mock, router := newTestServer(t)

	mock.ExpectQuery("SELECT em.*\nFROM `employees` em\nORDER BY last_name ASC, first_name ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	rec := doRequest(router, http.MethodGet,
		"/v1/objects/employees?order=last_name%20ASC,first_name%20ASC", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	mock, router := newTestServer(t)

	mock.ExpectExec("UPDATE `employees` SET `first_name` = 'Ann' WHERE `id` = 5").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(router, http.MethodPatch, "/v1/objects/employees/5", `{"first_name": "Ann"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteByDefault(t *testing.T) {
	mock, router := newTestServer(t)

	mock.ExpectExec("UPDATE `employees` SET `is_active` = 0 WHERE `id` = 5").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(router, http.MethodDelete, "/v1/objects/employees/5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHardDelete(t *testing.T) {
	mock, router := newTestServer(t)

	mock.ExpectExec("DELETE FROM `employees` WHERE `id` = 5").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(router, http.MethodDelete, "/v1/objects/employees/5?hard=true", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithoutIdentifier(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(router, http.MethodPatch, "/v1/objects/employees", `{"first_name": "Ann"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, false, resp["success"])
}

func TestCreateWithEmptyBody(t *testing.T) {
	_, router := newTestServer(t)

	// The adapter injects an id, so the body is never empty on POST; send
	// the empty body through PUT instead, which takes it as-is.
	rec := doRequest(router, http.MethodPut, "/v1/objects/employees/5", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
