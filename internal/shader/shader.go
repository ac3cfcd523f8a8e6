package shader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrResourceUnavailable is returned when a shader source cannot be fetched or read.
var ErrResourceUnavailable = errors.New("shader: resource unavailable")

// File names looked up under the configured source.
const (
	VertexFile   = "custom-vertex.glsl"
	FragmentFile = "custom-fragment.glsl"
)

// OriginInline marks the built-in pair.
const OriginInline = "inline"

// DefaultTimeout bounds a remote fetch when the caller's context has no deadline.
const DefaultTimeout = 10 * time.Second

// Pair is a vertex + fragment GLSL source pair. Origin records where it came from
// (a directory, a base URL, or OriginInline).
type Pair struct {
	Vertex   string
	Fragment string
	Origin   string
}

// Inline returns the built-in pair used when the external sources are missing.
// Uniforms: float time, vec3 baseColor.
func Inline() Pair {
	return Pair{Vertex: inlineVS, Fragment: inlineFS, Origin: OriginInline}
}

// IsInline reports whether p is the built-in fallback.
func (p Pair) IsInline() bool { return p.Origin == OriginInline }

var inlinePair = Inline()

// OrInline returns p, or a shared inline pair when p is nil. The shared pair must not be
// modified.
func OrInline(p *Pair) *Pair {
	if p == nil {
		return &inlinePair
	}
	return p
}

// Usable reports whether a compiled program can be drawn with: the driver accepted it and
// every required uniform location was found. A driver that rejects a program hands back
// its default one, which has none of the custom uniforms.
func Usable(valid bool, locations ...int32) bool {
	if !valid {
		return false
	}
	for _, loc := range locations {
		if loc < 0 {
			return false
		}
	}
	return true
}

// Logger is the subset of the app logger used here.
type Logger interface {
	Log(line string)
}

// Load reads VertexFile and FragmentFile from source, which is either a directory or an
// http(s) base URL. Every failure wraps ErrResourceUnavailable.
func Load(ctx context.Context, source string) (Pair, error) {
	if strings.TrimSpace(source) == "" {
		return Pair{}, fmt.Errorf("%w: no source configured", ErrResourceUnavailable)
	}
	fetch := readFile
	if isURL(source) {
		fetch = fetchURL
	}
	vs, err := fetch(ctx, source, VertexFile)
	if err != nil {
		return Pair{}, err
	}
	fs, err := fetch(ctx, source, FragmentFile)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Vertex: vs, Fragment: fs, Origin: source}, nil
}

// Resolve runs Load and, on any error, logs it and returns Inline(). It never fails, so
// scene construction can always proceed right after it returns.
func Resolve(ctx context.Context, source string, log Logger) Pair {
	p, err := Load(ctx, source)
	if err != nil {
		if log != nil {
			log.Log("shader load failed, using inline shaders: " + err.Error())
		}
		return Inline()
	}
	if log != nil {
		log.Log("shaders loaded from " + p.Origin)
	}
	return p
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func readFile(_ context.Context, dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
	return nonEmpty(name, data)
}

func fetchURL(ctx context.Context, base, name string) (string, error) {
	u, err := url.JoinPath(base, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResourceUnavailable, name, err)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResourceUnavailable, name, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResourceUnavailable, name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s: HTTP %d", ErrResourceUnavailable, name, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResourceUnavailable, name, err)
	}
	return nonEmpty(name, data)
}

func nonEmpty(name string, data []byte) (string, error) {
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrResourceUnavailable, name)
	}
	return string(data), nil
}
