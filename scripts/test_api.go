package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api/clinical/v1"

// Pretty print JSON helper
func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
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

	client := &http.Client{Timeout: 180 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	return res, resBody, err
}

func main() {
	color.Cyan("=== Clinical Notes API Smoke Test ===")

	patientId := "smoke-test-patient"
	sessionInput := "Patient reports two weeks of low mood, poor sleep and loss of appetite after losing their job. " +
		"Mentions passive thoughts that life is not worth living but denies any plan or intent. " +
		"Agreed to a safety plan and a follow-up next week."

	// 1. Process a session
	color.Yellow("\n[1] POST /process-session")
	res, body, err := sendRequest("POST", "/process-session", map[string]string{
		"sessionInput": sessionInput,
		"patientId":    patientId,
	})
	if err != nil {
		color.Red("Request failed: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Status: %d\n", res.StatusCode)
	prettyPrint(body)

	var envelope struct {
		Data struct {
			SessionNoteId string `json:"sessionNoteId"`
			RiskFlags     []struct {
				Level string `json:"level"`
			} `json:"riskFlags"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Data.SessionNoteId == "" {
		color.Red("No sessionNoteId in response, stopping")
		os.Exit(1)
	}
	noteId := envelope.Data.SessionNoteId
	color.Green("Created session note %s", noteId)

	// 2. Processing status
	color.Yellow("\n[2] GET /process-status/%s", noteId)
	res, body, err = sendRequest("GET", "/process-status/"+noteId, nil)
	if err != nil {
		color.Red("Request failed: %v", err)
	} else {
		fmt.Printf("Status: %d\n", res.StatusCode)
		prettyPrint(body)
	}

	// 3. Fetch the stored note
	color.Yellow("\n[3] GET /session-notes/%s", noteId)
	res, body, err = sendRequest("GET", "/session-notes/"+noteId, nil)
	if err != nil {
		color.Red("Request failed: %v", err)
	} else {
		fmt.Printf("Status: %d\n", res.StatusCode)
		prettyPrint(body)
	}

	// 4. List notes for the patient
	color.Yellow("\n[4] GET /patients/%s/session-notes", patientId)
	res, body, err = sendRequest("GET", "/patients/"+patientId+"/session-notes", nil)
	if err != nil {
		color.Red("Request failed: %v", err)
	} else {
		fmt.Printf("Status: %d\n", res.StatusCode)
		prettyPrint(body)
	}

	// 5. Similar sessions (embedding worker may still be running)
	color.Yellow("\n[5] GET /session-notes/%s/similar", noteId)
	time.Sleep(2 * time.Second)
	res, body, err = sendRequest("GET", "/session-notes/"+noteId+"/similar?limit=3", nil)
	if err != nil {
		color.Red("Request failed: %v", err)
	} else {
		fmt.Printf("Status: %d\n", res.StatusCode)
		prettyPrint(body)
	}

	color.Cyan("\n=== Done ===")
}
