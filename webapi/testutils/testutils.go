// Package testutils provides the base suite for driving the whole API
// through Fiber's in-process test transport.
package testutils

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/pixlab/transferapi/infra/repository/memory"
	"github.com/pixlab/transferapi/pkg/config"
	transfersvc "github.com/pixlab/transferapi/pkg/service/transfer"
	usersvc "github.com/pixlab/transferapi/pkg/service/user"
	"github.com/pixlab/transferapi/webapi"
)

// E2ETestSuite builds a fresh store and app for every test, so tests are
// isolated without touching the store's Reset.
type E2ETestSuite struct {
	suite.Suite
	App   *fiber.App
	Store *memory.Store
	Cfg   *config.App
}

// SetupTest wires a new store, services, and Fiber app. The rate limiter
// ceiling is raised so request-heavy tests never trip it.
func (s *E2ETestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Cfg = &config.App{
		Env:       "test",
		Server:    config.Server{Host: "127.0.0.1", Port: 0},
		Cors:      config.Cors{Origin: "*"},
		RateLimit: config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Transfer:  config.Transfer{NonFavoredCap: 5000},
	}
	s.Store = memory.New()
	userSvc := usersvc.New(s.Store.Users(), logger)
	transferSvc := transfersvc.New(userSvc, s.Store.Transfers(), s.Cfg.Transfer.NonFavoredCap, logger)
	s.App = webapi.New(s.Cfg, userSvc, transferSvc, logger)
}

// MakeRequest performs an in-process request and returns the raw response.
func (s *E2ETestSuite) MakeRequest(method, target, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// DecodeBody decodes the response envelope into a generic map.
func (s *E2ETestSuite) DecodeBody(resp *http.Response) map[string]any {
	defer resp.Body.Close() //nolint:errcheck
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(raw, &body), "body: %s", raw)
	return body
}

// RegisterUser registers a user through the API and returns its id.
func (s *E2ETestSuite) RegisterUser(name, email, password string, favored bool, balance float64) int64 {
	payload := fmt.Sprintf(
		`{"name":%q,"email":%q,"password":%q,"isFavored":%t,"initialBalance":%g}`,
		name, email, password, favored, balance,
	)
	resp := s.MakeRequest(fiber.MethodPost, "/api/users/register", payload)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	body := s.DecodeBody(resp)
	data, ok := body["data"].(map[string]any)
	s.Require().True(ok, "register response has no data object")
	return int64(data["id"].(float64))
}

// GetBalance reads a user's balance through the API.
func (s *E2ETestSuite) GetBalance(id int64) float64 {
	resp := s.MakeRequest(fiber.MethodGet, fmt.Sprintf("/api/users/%d", id), "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := s.DecodeBody(resp)["data"].(map[string]any)
	return data["balance"].(float64)
}
