//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func lambdaRequest(method, body string, b64 bool) events.LambdaFunctionURLRequest {
	ev := events.LambdaFunctionURLRequest{Body: body, IsBase64Encoded: b64}
	ev.RequestContext.HTTP.Method = method
	return ev
}

func TestLambdaHandler(t *testing.T) {
	table = DefaultRecipeTable()
	body := `{"stock": {"ミルク": 2, "卵": 2, "ジャガイモ": 4}}`

	tests := []struct {
		name   string
		event  events.LambdaFunctionURLRequest
		status int
	}{
		{"compute", lambdaRequest(http.MethodPost, body, false), http.StatusOK},
		{"compute base64", lambdaRequest(http.MethodPost, base64.StdEncoding.EncodeToString([]byte(body)), true), http.StatusOK},
		{"bad base64", lambdaRequest(http.MethodPost, "%%%", true), http.StatusBadRequest},
		{"bad json", lambdaRequest(http.MethodPost, "{", false), http.StatusBadRequest},
		{"recipes", lambdaRequest(http.MethodGet, "", false), http.StatusOK},
		{"method", lambdaRequest(http.MethodDelete, "", false), http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := handler(context.Background(), tt.event)
			if err != nil {
				t.Fatalf("handler: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("status %d, want %d: %s", resp.StatusCode, tt.status, resp.Body)
			}
			if resp.Headers["Content-Type"] != "application/json" {
				t.Errorf("content type %q", resp.Headers["Content-Type"])
			}
			if tt.event.RequestContext.HTTP.Method == http.MethodPost && tt.status == http.StatusOK {
				var out computeResponse
				if err := json.Unmarshal([]byte(resp.Body), &out); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if out.TotalDishes != 2 {
					t.Errorf("totalDishes %d, want 2", out.TotalDishes)
				}
			}
		})
	}
}
