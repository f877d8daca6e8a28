package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/toyz/fakegen/internal/config"
)

const userDefinition = `interface User { id: string; email: string; role: 'admin' | 'member' }`

func newTestService(t *testing.T) (*Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	return NewService(config.Default(), zap.New(core)), logs
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	svc, _ := newTestService(t)
	rec := doJSON(t, NewHTTPServer(svc).Handler(), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMockEndpoint(t *testing.T) {
	svc, logs := newTestService(t)
	h := NewHTTPServer(svc).Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/mock", `{"interface": "`+userDefinition+`", "count": 3, "seed": 9}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Name string                   `json:"name"`
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User", body.Name)
	require.Len(t, body.Data, 3)
	for _, record := range body.Data {
		_, err := uuid.Parse(record["id"].(string))
		assert.NoError(t, err)
		assert.Contains(t, record["email"], "@")
		assert.Contains(t, []interface{}{"admin", "member"}, record["role"])
	}

	assert.NotZero(t, logs.FilterMessage("generated mocks").Len())
	assert.NotZero(t, logs.FilterMessage("request").Len())
}

func TestMockEndpointSource(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHTTPServer(svc).Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/mock", `{"interface": "`+userDefinition+`", "mode": "source", "target": "go"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body MockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Data)
	assert.Equal(t, "go", body.Target)
	assert.Contains(t, body.Source, "package mocks")
	assert.Contains(t, body.Source, "func GenerateUserMock(")
}

func TestMockEndpointSkipped(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHTTPServer(svc).Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/mock", `{"interface": "interface A { ok: string; : broken; }"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body MockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Skipped, 1)
	assert.Equal(t, ": broken", body.Skipped[0].Chunk)
}

func TestMockEndpointErrors(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHTTPServer(svc).Handler()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"no type name", `{"interface": "just some text"}`, http.StatusUnprocessableEntity, "NameNotFound"},
		{"no body", `{"interface": "interface User"}`, http.StatusUnprocessableEntity, "BodyNotFound"},
		{"empty definition", `{}`, http.StatusBadRequest, "InputError"},
		{"unknown mode", `{"interface": "interface A { a: string }", "mode": "fast"}`, http.StatusBadRequest, "ConfigurationError"},
		{"unknown target", `{"interface": "interface A { a: string }", "mode": "source", "target": "rust"}`, http.StatusBadRequest, "ConfigurationError"},
		{"count too large", `{"interface": "interface A { a: string }", "count": 5000}`, http.StatusBadRequest, "InputError"},
		{"malformed json", `{"interface": `, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/v1/mock", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			var he HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &he))
			assert.Equal(t, tt.wantStatus, he.StatusCode)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.NotEmpty(t, he.Message)
		})
	}
}

func TestParseEndpoint(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHTTPServer(svc).Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/parse", `{"interface": "type Point = { x: number; tags?: string[] }"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var def struct {
		Name       string `json:"name"`
		Kind       string `json:"kind"`
		Properties []struct {
			Name       string `json:"name"`
			IsOptional bool   `json:"isOptional"`
			IsArray    bool   `json:"isArray"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &def))
	assert.Equal(t, "Point", def.Name)
	assert.Equal(t, "type", def.Kind)
	require.Len(t, def.Properties, 2)
	assert.True(t, def.Properties[1].IsOptional)
	assert.True(t, def.Properties[1].IsArray)

	rec = doJSON(t, h, http.MethodPost, "/v1/parse", `{"interface": "nothing"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
