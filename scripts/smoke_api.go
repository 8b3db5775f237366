package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	return resp, raw, err
}

func main() {
	color.Cyan("Starting Smart Tools API smoke test\n")

	email := fmt.Sprintf("smoke+%d@example.com", os.Getpid())

	color.Yellow("\n1. Register")
	resp, raw, err := sendRequest("POST", "/auth/register", "", map[string]string{
		"email":     email,
		"password":  "password123",
		"full_name": "Smoke Tester",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(raw)

	color.Yellow("\n2. Login")
	resp, raw, err = sendRequest("POST", "/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var loginEnvelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &loginEnvelope); err != nil || loginEnvelope.Data.AccessToken == "" {
		color.Red("No access token in login response")
		os.Exit(1)
	}
	token := loginEnvelope.Data.AccessToken

	color.Yellow("\n3. List plans (public)")
	resp, raw, _ = sendRequest("GET", "/plans", "", nil)
	color.Green("Status: %s", resp.Status)

	color.Yellow("\n4. List tools")
	resp, raw, _ = sendRequest("GET", "/tools/", token, nil)
	color.Green("Status: %s", resp.Status)
	prettyPrint(raw)

	color.Yellow("\n5. Run quiz-generator (free tool, should succeed)")
	resp, raw, _ = sendRequest("POST", "/tools/quiz-generator/run", token, map[string]interface{}{
		"title":  "Smoke quiz",
		"input":  map[string]interface{}{"topic": "fractions"},
		"output": map[string]interface{}{"questions": []string{"1/2 + 1/4 = ?"}},
	})
	color.Green("Status: %s", resp.Status)
	prettyPrint(raw)

	color.Yellow("\n6. Run performance-analyzer (business tool, expect 403 on free tier)")
	resp, raw, _ = sendRequest("POST", "/tools/performance-analyzer/run", token, map[string]interface{}{
		"input":  map[string]interface{}{},
		"output": map[string]interface{}{},
	})
	if resp.StatusCode == http.StatusForbidden {
		color.Green("Correctly locked: %s", resp.Status)
	} else {
		color.Red("Unexpected status: %s", resp.Status)
	}
	prettyPrint(raw)

	color.Yellow("\n7. Usage status")
	resp, raw, _ = sendRequest("GET", "/user/usage-status", token, nil)
	color.Green("Status: %s", resp.Status)
	prettyPrint(raw)

	color.Cyan("\nSmoke test finished")
}
