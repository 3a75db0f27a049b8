package utils

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	defer ln.Close()

	ctx := context.Background()
	if err := PingService(ctx, "http://"+ln.Addr().String(), time.Second); err != nil {
		t.Errorf("expected a reachable listener, got %v", err)
	}

	addr := ln.Addr().String()
	ln.Close()
	if err := PingService(ctx, "http://"+addr, time.Second); err == nil {
		t.Error("expected an error for a closed port")
	}

	if err := PingService(ctx, "not a url", time.Second); err == nil {
		t.Error("expected an error for a URL without a host")
	}
}

func TestErrorResponseEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return NotFoundResponse(c, "Question not found")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing?x=1", nil), -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)

	var body ErrorResponseStruct
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound || body.Status != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d/%d", resp.StatusCode, body.Status)
	}
	if body.Ok || body.Type != "notFound" || body.URL != "/missing?x=1" || body.Message != "Question not found" {
		t.Errorf("unexpected envelope %+v", body)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("expected an RFC3339 timestamp, got %q", body.Timestamp)
	}
}

func TestCreatedResponseSetsLocation(t *testing.T) {
	app := fiber.New()
	app.Post("/cases", func(c *fiber.Ctx) error {
		return CreatedResponse(c, "/api/cases/abc", fiber.Map{"id": "abc"})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/cases", nil), -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != "/api/cases/abc" {
		t.Errorf("expected Location /api/cases/abc, got %q", got)
	}
}
