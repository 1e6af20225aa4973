package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ccfrost/vkbackup/vkbackupconfig"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// --- OAuth2 & Client Setup ---

const driveScope = "https://www.googleapis.com/auth/drive"

// SessionProvider obtains an authorized HTTP session for Google Drive. The
// backup pipeline only sees this interface, so headless substitutes can be
// injected in tests.
type SessionProvider interface {
	Client(ctx context.Context) (*http.Client, error)
}

type oauthSessionProvider struct {
	conf      *oauth2.Config
	tokenPath string
}

// NewDriveSessionProvider creates a SessionProvider backed by the installed-app
// OAuth2 flow. It handles token loading, refreshing, and saving.
func NewDriveSessionProvider(config vkbackupconfig.VkbackupConfig) SessionProvider {
	return &oauthSessionProvider{
		conf: &oauth2.Config{
			ClientID:     config.GoogleDrive.ClientId,
			ClientSecret: config.GoogleDrive.ClientSecret,
			RedirectURL:  config.GoogleDrive.RedirectURI,
			Scopes:       []string{driveScope},
			Endpoint:     google.Endpoint,
		},
		tokenPath: config.GoogleDrive.TokenPath,
	}
}

// Client returns an authorized HTTP client, reusing the persisted token when
// present and valid, otherwise running the interactive authorization flow and
// persisting the result.
func (p *oauthSessionProvider) Client(ctx context.Context) (*http.Client, error) {
	token, err := loadToken(p.tokenPath)
	if err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error reading token file (%s), requesting new token: %v\n", p.tokenPath, err)
	}

	if token == nil || !token.Valid() {
		fmt.Println("OAuth token is invalid or missing, starting auth flow...")
		token, err = getTokenFromWeb(ctx, p.conf)
		if err != nil {
			return nil, err
		}
		if err := saveToken(p.tokenPath, token); err != nil {
			// Log error but continue, the token is still usable in memory.
			fmt.Printf("Warning: Failed to save token to %s: %v\n", p.tokenPath, err)
		} else {
			fmt.Printf("Token obtained and saved successfully to %s\n", p.tokenPath)
		}
	}

	return p.conf.Client(ctx, token), nil
}

func loadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

// saveToken saves the OAuth2 token to the specified file path.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// getTokenFromWeb guides the user through the web-based OAuth2 flow.
func getTokenFromWeb(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}

	tok, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return tok, nil
}
