package game

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

type ambientEntry struct {
	script *ambientScript
	err    error
}

type ambientScript struct {
	fillerLine func(map[string]any) string
}

// ScriptProvider implements TextProvider with yaegi scripts. Each script
// exports FillerLine(payload map[string]any) string; scripts are compiled on
// first use and cached by source hash, and a panicking script is contained
// rather than taking the turn loop down.
type ScriptProvider struct {
	mu      sync.RWMutex
	sources []string
	scripts map[string]*ambientEntry
	random  *rand.Rand
}

// ScriptOption adjusts script provider construction.
type ScriptOption func(*ScriptProvider)

// WithScriptSeed makes script selection deterministic for a given seed.
func WithScriptSeed(seed int64) ScriptOption {
	return func(p *ScriptProvider) {
		p.random = rand.New(rand.NewSource(seed))
	}
}

// NewScriptProvider constructs a provider over the given script sources.
// With no sources the bundled street-ambience script is used.
func NewScriptProvider(sources []string, opts ...ScriptOption) *ScriptProvider {
	cleaned := make([]string, 0, len(sources))
	for _, source := range sources {
		if strings.TrimSpace(source) == "" {
			continue
		}
		cleaned = append(cleaned, source)
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, defaultAmbientScript)
	}
	provider := &ScriptProvider{
		sources: cleaned,
		scripts: make(map[string]*ambientEntry),
		random:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(provider)
	}
	return provider
}

// FillerLine picks a script and asks it for a line for the current turn.
func (p *ScriptProvider) FillerLine(turn int) (string, bool) {
	p.mu.Lock()
	source := p.sources[p.random.Intn(len(p.sources))]
	pick := func(n int) int {
		if n <= 0 {
			return 0
		}
		return p.random.Intn(n)
	}
	p.mu.Unlock()

	script, err := p.scriptFor(source)
	if err != nil {
		fmt.Printf("ambient script failed to load: %v\n", err)
		return "", false
	}
	if script == nil || script.fillerLine == nil {
		return "", false
	}

	payload := map[string]any{
		"turn": turn,
		"pick": pick,
	}
	var line string
	p.invoke("FillerLine", func() {
		line = script.fillerLine(payload)
	})
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	return line, true
}

func (p *ScriptProvider) invoke(hook string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("ambient script %s panic: %v\n", hook, r)
		}
	}()
	fn()
}

func (p *ScriptProvider) scriptFor(source string) (*ambientScript, error) {
	key := hashScript(source)
	p.mu.RLock()
	entry, ok := p.scripts[key]
	p.mu.RUnlock()
	if ok {
		return entry.script, entry.err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if entry, ok := p.scripts[key]; ok {
		return entry.script, entry.err
	}
	script, err := compileAmbient(source)
	p.scripts[key] = &ambientEntry{script: script, err: err}
	return script, err
}

func compileAmbient(source string) (*ambientScript, error) {
	interpreter := interp.New(interp.Options{})
	interpreter.Use(stdlib.Symbols)
	if _, err := interpreter.Eval(source); err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	compiled := &ambientScript{}
	value, err := interpreter.Eval("FillerLine")
	if err != nil {
		if isUndefinedSymbol(err) {
			return compiled, nil
		}
		return nil, fmt.Errorf("FillerLine: %w", err)
	}
	fn, ok := value.Interface().(func(map[string]any) string)
	if !ok {
		return nil, fmt.Errorf("FillerLine has unexpected type %T", value.Interface())
	}
	compiled.fillerLine = fn
	return compiled, nil
}

func hashScript(src string) string {
	sum := sha1.Sum([]byte(src))
	return hex.EncodeToString(sum[:])
}

func isUndefinedSymbol(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "undefined") || strings.Contains(msg, "not declared")
}

const defaultAmbientScript = `
var lines = []string{
	"A siren wails somewhere beyond the rooftops.",
	"Steam curls out of a cracked grate in the road.",
	"A stray cat watches you from a fire escape.",
	"Somewhere close, a screen door bangs in the wind.",
	"The smell of wet soil drifts over from the lot gardens.",
}

func FillerLine(payload map[string]any) string {
	pick, ok := payload["pick"].(func(int) int)
	if !ok {
		return lines[0]
	}
	return lines[pick(len(lines))]
}
`
