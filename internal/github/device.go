// Package github implements the device-code OAuth login against GitHub.
package github

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gitas/gitas/internal/platform"
	"github.com/gitas/gitas/internal/ui"
)

const (
	clientID       = "Ov23likbcGeD5f41YHUr"
	oauthScope     = "read:user user:email repo workflow"
	deviceCodeURL  = "https://github.com/login/device/code"
	accessTokenURL = "https://github.com/login/oauth/access_token"
	apiBase        = "https://api.github.com"
	userAgent      = "gitas-cli"
)

// Result is a successful browser login.
type Result struct {
	Login string
	Email string
	Name  string
	Token string
}

type deviceCodeResponse struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURI string `json:"verification_uri"`
	Interval        int    `json:"interval"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
}

type userResponse struct {
	Login string `json:"login"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type emailResponse struct {
	Email   string `json:"email"`
	Primary bool   `json:"primary"`
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Login runs the GitHub device-code flow: requests a device code, opens
// the verification page in the browser, polls until the user authorizes,
// then resolves the account's login, email and display name. Returns
// false on any failure or when the provider denies the grant.
func Login() (Result, bool) {
	var device deviceCodeResponse
	err := postForm(deviceCodeURL, url.Values{
		"client_id": {clientID},
		"scope":     {oauthScope},
	}, &device)
	if err != nil {
		ui.Error("Failed to connect to GitHub.")
		return Result{}, false
	}

	fmt.Println()
	fmt.Printf("  Please visit: %s\n", device.VerificationURI)
	fmt.Printf("  And enter code: %s\n", device.UserCode)
	fmt.Println()

	// Give the user a moment to see the code before the browser steals focus.
	time.Sleep(1 * time.Second)
	if err := platform.OpenBrowser(device.VerificationURI); err != nil {
		fmt.Println("  (Failed to open browser automatically)")
	}

	fmt.Println("  Waiting for authentication...")
	interval := time.Duration(device.Interval+1) * time.Second

	for {
		time.Sleep(interval)

		var token tokenResponse
		err := postForm(accessTokenURL, url.Values{
			"client_id":   {clientID},
			"device_code": {device.DeviceCode},
			"grant_type":  {"urn:ietf:params:oauth:grant-type:device_code"},
		}, &token)
		if err != nil {
			continue
		}

		if token.AccessToken != "" {
			return fetchUser(token.AccessToken)
		}
		if token.Error != "" && token.Error != "authorization_pending" && token.Error != "slow_down" {
			ui.Error("GitHub login failed: " + token.Error)
			return Result{}, false
		}
	}
}

func fetchUser(token string) (Result, bool) {
	var user userResponse
	if err := getJSON(apiBase+"/user", token, &user); err != nil {
		ui.Error("Failed to fetch user info.")
		return Result{}, false
	}

	email := user.Email
	var emails []emailResponse
	if err := getJSON(apiBase+"/user/emails", token, &emails); err == nil {
		if picked := pickEmail(emails); picked != "" {
			email = picked
		}
	}

	return Result{Login: user.Login, Email: email, Name: user.Name, Token: token}, true
}

// pickEmail chooses the address to use for commits: the noreply address
// first, then the primary one, then whatever comes first.
func pickEmail(emails []emailResponse) string {
	for _, e := range emails {
		if strings.Contains(e.Email, "noreply.github.com") {
			return e.Email
		}
	}
	for _, e := range emails {
		if e.Primary {
			return e.Email
		}
	}
	if len(emails) > 0 {
		return emails[0].Email
	}
	return ""
}

func postForm(endpoint string, form url.Values, out interface{}) error {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)
	return doJSON(req, out)
}

func getJSON(endpoint, token string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", userAgent)
	return doJSON(req, out)
}

func doJSON(req *http.Request, out interface{}) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
