package exchangerate_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"countryservice/internal/apperrors"
	"countryservice/internal/exchangerate"
)

func TestRatesClient_FetchRates(t *testing.T) {
	t.Run("parses the rate table", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"result":"success","rates":{"USD":1.0,"NGN":800.5,"EUR":0.9}}`))
		}))
		defer server.Close()

		client := exchangerate.NewClient(server.URL, time.Second)
		rates, err := client.FetchRates(context.Background())
		if err != nil {
			t.Fatalf("FetchRates failed: %v", err)
		}

		if len(rates) != 3 {
			t.Errorf("Expected 3 rates, got %d", len(rates))
		}
		if rates["NGN"] != 800.5 {
			t.Errorf("Expected NGN rate 800.5, got %f", rates["NGN"])
		}
	})

	t.Run("drops non-positive rates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"rates":{"USD":1.0,"BAD":0,"WORSE":-3}}`))
		}))
		defer server.Close()

		client := exchangerate.NewClient(server.URL, time.Second)
		rates, err := client.FetchRates(context.Background())
		if err != nil {
			t.Fatalf("FetchRates failed: %v", err)
		}

		if len(rates) != 1 {
			t.Errorf("Expected only the USD rate to survive, got %v", rates)
		}
	})

	t.Run("missing rates structure is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"result":"success"}`))
		}))
		defer server.Close()

		client := exchangerate.NewClient(server.URL, time.Second)
		if _, err := client.FetchRates(context.Background()); !errors.Is(err, apperrors.ErrSourceMalformed) {
			t.Errorf("Expected ErrSourceMalformed, got %v", err)
		}
	})

	t.Run("undecodable body is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`oops`))
		}))
		defer server.Close()

		client := exchangerate.NewClient(server.URL, time.Second)
		if _, err := client.FetchRates(context.Background()); !errors.Is(err, apperrors.ErrSourceMalformed) {
			t.Errorf("Expected ErrSourceMalformed, got %v", err)
		}
	})

	t.Run("non-2xx status is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := exchangerate.NewClient(server.URL, time.Second)
		if _, err := client.FetchRates(context.Background()); !errors.Is(err, apperrors.ErrSourceUnreachable) {
			t.Errorf("Expected ErrSourceUnreachable, got %v", err)
		}
	})

	t.Run("timeout is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer server.Close()

		client := exchangerate.NewClient(server.URL, 50*time.Millisecond)
		if _, err := client.FetchRates(context.Background()); !errors.Is(err, apperrors.ErrSourceUnreachable) {
			t.Errorf("Expected ErrSourceUnreachable, got %v", err)
		}
	})
}
