package logo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ThomasCrouzet/nagmaps/internal/util"
)

// Version is sent in the User-Agent header of logo downloads.
var Version = "dev"

// Error reports a logo that could not be fetched.
type Error struct {
	Ref string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetching logo %s: %v", e.Ref, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRemote reports whether ref has to be downloaded.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http")
}

// Resolver keeps local copies of remote logos in an image directory.
type Resolver struct {
	ImageDir string
	Client   *http.Client
}

// NewResolver returns a Resolver storing images in imageDir.
func NewResolver(imageDir string) *Resolver {
	return &Resolver{
		ImageDir: imageDir,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Resolve returns the local path of ref. Local references are returned
// unchanged. Remote ones are downloaded once into the image directory,
// named after the last element of the URL path.
func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	if !IsRemote(ref) {
		return ref, nil
	}

	name := util.URLBase(ref)
	if name == "" {
		return "", &Error{Ref: ref, Err: errors.New("no file name in url")}
	}
	localPath := filepath.Join(r.ImageDir, name)

	if _, err := os.Stat(localPath); err == nil {
		return localPath, nil
	}

	if err := r.download(ctx, ref, localPath); err != nil {
		return "", &Error{Ref: ref, Err: err}
	}
	return localPath, nil
}

func (r *Resolver) download(ctx context.Context, ref, localPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "nagmaps/"+Version)

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	f, err := os.Create(localPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(localPath)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(localPath)
		return err
	}
	return nil
}
