package main

import (
	"net/http"

	"github.com/tidwall/gjson"
)

// computeRequest is the body accepted by the compute endpoint. The stock may
// be sent bare or wrapped as {"stock": {...}}.
type computeRequest struct {
	Stock Stock
}

type computeResponse struct {
	ResultView
	TimeUs int64 `json:"timeUs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func parseComputeRequest(body string) (computeRequest, error) {
	var req computeRequest
	if !gjson.Valid(body) {
		return req, errMalformedBody
	}
	root := gjson.Parse(body)
	if s := root.Get("stock"); s.Exists() {
		root = s
	}
	if !root.IsObject() {
		return req, errStockNotObject
	}
	readStockObject(root, &req.Stock)
	return req, nil
}

// handleCompute is the transport-independent compute handler. It returns the
// HTTP status and a JSON-serializable body.
func handleCompute(body string, table RecipeTable) (int, any) {
	req, err := parseComputeRequest(body)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	in := Input{Stock: req.Stock, Recipes: table}
	r := in.Calculate()
	return http.StatusOK, computeResponse{ResultView: NewResultView(r.Result), TimeUs: r.TimeUs}
}
