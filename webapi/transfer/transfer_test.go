package transfer_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/pixlab/transferapi/webapi/testutils"
)

type TransferAPITestSuite struct {
	testutils.E2ETestSuite
}

func TestTransferAPITestSuite(t *testing.T) {
	suite.Run(t, new(TransferAPITestSuite))
}

// seedUsers registers the three account fixtures used across transfer tests:
// a rich non-favored sender, a poor non-favored recipient, and a favored one.
func (s *TransferAPITestSuite) seedUsers() (alice, bob, carol int64) {
	alice = s.RegisterUser("Alice", "alice@example.com", "secret123", false, 50000)
	bob = s.RegisterUser("Bob", "bob@example.com", "secret123", false, 500)
	carol = s.RegisterUser("Carol", "carol@example.com", "secret123", true, 2000)
	return alice, bob, carol
}

func transferBody(from, to int64, amount float64) string {
	return fmt.Sprintf(`{"fromUserId":%d,"toUserId":%d,"amount":%g}`, from, to, amount)
}

func (s *TransferAPITestSuite) TestMakeTransferSuccess() {
	alice, bob, _ := s.seedUsers()

	resp := s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, bob, 100))
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	body := s.DecodeBody(resp)
	s.Equal(true, body["success"])
	data := body["data"].(map[string]any)
	s.Equal(float64(1), data["id"])
	s.Equal(float64(alice), data["fromUserId"])
	s.Equal(float64(bob), data["toUserId"])
	s.Equal(float64(100), data["amount"])
	s.Contains(data, "createdAt")

	s.Equal(float64(49900), s.GetBalance(alice))
	s.Equal(float64(600), s.GetBalance(bob))
}

func (s *TransferAPITestSuite) TestMakeTransferFailures() {
	alice, bob, _ := s.seedUsers()

	testCases := []struct {
		desc        string
		body        string
		wantMessage string
	}{
		{
			desc:        "missing fields",
			body:        `{"fromUserId":1}`,
			wantMessage: "sender, recipient, and amount are required",
		},
		{
			desc:        "zero amount",
			body:        transferBody(alice, bob, 0),
			wantMessage: "sender, recipient, and amount are required",
		},
		{
			desc:        "negative amount",
			body:        transferBody(alice, bob, -50),
			wantMessage: "amount must be greater than zero",
		},
		{
			desc:        "unknown sender",
			body:        transferBody(42, bob, 100),
			wantMessage: "sender not found",
		},
		{
			desc:        "unknown recipient",
			body:        transferBody(alice, 42, 100),
			wantMessage: "recipient not found",
		},
		{
			desc:        "self transfer",
			body:        transferBody(alice, alice, 100),
			wantMessage: "cannot transfer to self",
		},
		{
			desc:        "over the non-favored cap",
			body:        transferBody(alice, bob, 6000),
			wantMessage: "transfers to non-favored users are capped at 5000",
		},
		{
			desc:        "insufficient balance",
			body:        transferBody(bob, alice, 1000),
			wantMessage: "insufficient funds",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(fiber.MethodPost, "/api/transfers", tc.body)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
			body := s.DecodeBody(resp)
			s.Equal(false, body["success"])
			s.Equal(tc.wantMessage, body["message"])
		})
	}

	// nothing above should have moved money or recorded a transfer
	s.Equal(float64(50000), s.GetBalance(alice))
	s.Equal(float64(500), s.GetBalance(bob))
	resp := s.MakeRequest(fiber.MethodGet, "/api/transfers", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Empty(s.DecodeBody(resp)["data"])
}

func (s *TransferAPITestSuite) TestCapIgnoredForFavoredRecipient() {
	alice, _, carol := s.seedUsers()

	resp := s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, carol, 10000))
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	s.Equal(float64(40000), s.GetBalance(alice))
	s.Equal(float64(12000), s.GetBalance(carol))
}

func (s *TransferAPITestSuite) TestCapBoundaryExactlyAtLimit() {
	alice, bob, _ := s.seedUsers()

	resp := s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, bob, 5000))
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	s.Equal(float64(5500), s.GetBalance(bob))
}

func (s *TransferAPITestSuite) TestListTransfersEnriched() {
	alice, bob, carol := s.seedUsers()

	resp := s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, bob, 100))
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	resp = s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, carol, 10000))
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodGet, "/api/transfers", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	data := s.DecodeBody(resp)["data"].([]any)
	s.Require().Len(data, 2)

	// oldest first
	first := data[0].(map[string]any)
	s.Equal(float64(1), first["id"])
	s.Equal(float64(100), first["amount"])
	fromUser := first["fromUser"].(map[string]any)
	s.Equal("Alice", fromUser["name"])
	s.NotContains(fromUser, "password")
	toUser := first["toUser"].(map[string]any)
	s.Equal("Bob", toUser["name"])

	second := data[1].(map[string]any)
	s.Equal(float64(2), second["id"])
	s.Equal("Carol", second["toUser"].(map[string]any)["name"])
}

func (s *TransferAPITestSuite) TestListUserTransfers() {
	alice, bob, carol := s.seedUsers()

	s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, bob, 100))
	s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, carol, 200))
	s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(carol, bob, 50))

	s.Run("sent and received", func() {
		resp := s.MakeRequest(fiber.MethodGet, fmt.Sprintf("/api/transfers/user/%d", carol), "")
		s.Equal(fiber.StatusOK, resp.StatusCode)
		data := s.DecodeBody(resp)["data"].([]any)
		s.Len(data, 2)
	})

	s.Run("user with no transfers", func() {
		dave := s.RegisterUser("Dave", "dave@example.com", "secret123", false, 0)
		resp := s.MakeRequest(fiber.MethodGet, fmt.Sprintf("/api/transfers/user/%d", dave), "")
		s.Equal(fiber.StatusOK, resp.StatusCode)
		s.Empty(s.DecodeBody(resp)["data"])
	})

	s.Run("unknown user", func() {
		resp := s.MakeRequest(fiber.MethodGet, "/api/transfers/user/42", "")
		s.Equal(fiber.StatusNotFound, resp.StatusCode)
		s.Equal("user not found", s.DecodeBody(resp)["message"])
	})

	s.Run("non-numeric id", func() {
		resp := s.MakeRequest(fiber.MethodGet, "/api/transfers/user/abc", "")
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		s.Equal("user ID must be a valid number", s.DecodeBody(resp)["message"])
	})
}

func (s *TransferAPITestSuite) TestGetTransferByID() {
	alice, bob, _ := s.seedUsers()
	s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, bob, 100))

	s.Run("success", func() {
		resp := s.MakeRequest(fiber.MethodGet, "/api/transfers/1", "")
		s.Equal(fiber.StatusOK, resp.StatusCode)
		data := s.DecodeBody(resp)["data"].(map[string]any)
		s.Equal(float64(1), data["id"])
		s.Equal("Alice", data["fromUser"].(map[string]any)["name"])
	})

	s.Run("not found", func() {
		resp := s.MakeRequest(fiber.MethodGet, "/api/transfers/42", "")
		s.Equal(fiber.StatusNotFound, resp.StatusCode)
		s.Equal("transfer not found", s.DecodeBody(resp)["message"])
	})

	s.Run("non-numeric id", func() {
		resp := s.MakeRequest(fiber.MethodGet, "/api/transfers/abc", "")
		s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		s.Equal("transfer ID must be a valid number", s.DecodeBody(resp)["message"])
	})
}

// TestFullScenario walks the whole flow in one sitting: three accounts,
// a mix of allowed and rejected transfers, and a final ledger check.
func (s *TransferAPITestSuite) TestFullScenario() {
	alice, bob, carol := s.seedUsers()

	// ordinary transfer
	resp := s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, bob, 100))
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	s.Equal(float64(600), s.GetBalance(bob))

	// over the cap, but the recipient is favored
	resp = s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, carol, 10000))
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	// over the cap to a non-favored recipient
	resp = s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, bob, 6000))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Contains(s.DecodeBody(resp)["message"], "5000")

	// negative amount
	resp = s.MakeRequest(fiber.MethodPost, "/api/transfers", transferBody(alice, bob, -50))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("amount must be greater than zero", s.DecodeBody(resp)["message"])

	// only the two successful transfers were recorded, oldest first
	resp = s.MakeRequest(fiber.MethodGet, "/api/transfers", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	data := s.DecodeBody(resp)["data"].([]any)
	s.Require().Len(data, 2)
	s.Equal(float64(1), data[0].(map[string]any)["id"])
	s.Equal(float64(2), data[1].(map[string]any)["id"])

	s.Equal(float64(39900), s.GetBalance(alice))
	s.Equal(float64(600), s.GetBalance(bob))
	s.Equal(float64(12000), s.GetBalance(carol))
}
