// Package notifier is the client for the local pawkeep notification agent,
// the daemon that owns OS-level notification delivery. The agent is
// discovered through a lockfile it writes on startup; requests are
// authenticated with the secret from that lockfile.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/pawkeep/pawkeep/internal/constants"
	"github.com/pawkeep/pawkeep/internal/reminder"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

type AgentClient struct{}

type schedulePayload struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Body    string           `json:"body"`
	Trigger reminder.Trigger `json:"trigger"`
}

type cancelPayload struct {
	IDs []string `json:"ids"`
}

func New() *AgentClient {
	return &AgentClient{}
}

// PermissionStatus asks the agent for the OS notification permission state.
func (c *AgentClient) PermissionStatus() (reminder.PermissionStatus, error) {
	var result struct {
		Status string `json:"status"`
	}
	if err := c.get("/permission", &result); err != nil {
		return reminder.PermissionNotDetermined, err
	}
	return reminder.PermissionStatus(result.Status), nil
}

// RequestPermission asks the agent to prompt the user for notification
// permission and reports whether it was granted.
func (c *AgentClient) RequestPermission() (bool, error) {
	var result struct {
		Granted bool `json:"granted"`
	}
	if err := c.post("/permission/request", struct{}{}, &result); err != nil {
		return false, err
	}
	return result.Granted, nil
}

// Schedule registers a trigger with the agent under the given identifier.
func (c *AgentClient) Schedule(id, title, body string, trigger reminder.Trigger) error {
	return c.post("/schedule", schedulePayload{
		ID:      id,
		Title:   title,
		Body:    body,
		Trigger: trigger,
	}, nil)
}

// Cancel removes the agent's pending triggers for the given identifiers.
func (c *AgentClient) Cancel(ids []string) error {
	return c.post("/cancel", cancelPayload{IDs: ids}, nil)
}

// AgentConfigDir returns the configuration directory used by the agent.
func AgentConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(configDir, constants.AgentIdentifier), nil
}

func (c *AgentClient) endpoint() (string, string, error) {
	agentConfigDir, err := AgentConfigDir()
	if err != nil {
		return "", "", err
	}
	return findAndValidateAgentProcess(filepath.Join(agentConfigDir, constants.AgentLockfileName))
}

// findAndValidateAgentProcess reads the agent lockfile (port|pid|secret) and
// verifies the recorded process is actually the agent before trusting it.
func findAndValidateAgentProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("pawkeep-agent is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("pawkeep-agent process not running")
	}

	if !strings.HasPrefix(process.Executable(), "pawkeep-agent") {
		return "", "", fmt.Errorf("process with PID %d is not pawkeep-agent (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func (c *AgentClient) post(path string, payload any, result any) error {
	port, secret, err := c.endpoint()
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("http://127.0.0.1:%s%s", port, path), bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Pawkeep-Secret", secret)

	return c.do(req, result)
}

func (c *AgentClient) get(path string, result any) error {
	port, secret, err := c.endpoint()
	if err != nil {
		return err
	}

	req, err := http.NewRequest("GET", fmt.Sprintf("http://127.0.0.1:%s%s", port, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Pawkeep-Secret", secret)

	return c.do(req, result)
}

func (c *AgentClient) do(req *http.Request, result any) error {
	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("agent request failed with status %d: %s", res.StatusCode, string(body))
	}

	if result == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(result)
}
