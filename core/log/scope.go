// File: scope.go
// Title: Scope Tree and Root Level Facade
// Description: Implements the named scope tree with level inheritance.
//              Every scope carries an explicit threshold or inherits the
//              effective one from its nearest configured ancestor. The root
//              scope always has an explicit threshold, so its effective
//              level equals its own. Package-level functions expose the
//              root of a replaceable default tree.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with scope tree and facade

package log

import (
	"sort"
	"strings"
	"sync"

	slerror "github.com/msto63/scopelog/core/error"
	"github.com/msto63/scopelog/utils/stringx"
)

// ScopeSet owns a tree of named scopes sharing one root. Applications
// normally use the package default set, but can create and pass their own
// to keep logging configuration out of global state.
type ScopeSet struct {
	mu     sync.RWMutex
	root   *Scope
	scopes map[string]*Scope
}

// Scope is a named severity-filtering entity. The root scope has the empty
// name; children are addressed with dot-separated paths ("app.db").
type Scope struct {
	set    *ScopeSet
	name   string
	parent *Scope

	mu    sync.RWMutex
	level Level
}

// NewScopeSet creates a scope tree whose root level is resolved through
// the environment chain (see DetermineLevel)
func NewScopeSet() *ScopeSet {
	return newScopeSet(DetermineLevel(""))
}

// NewScopeSetWithLevel creates a scope tree with an explicit root level.
// The root cannot inherit, so NotSet and negative values are rejected.
func NewScopeSetWithLevel(level Level) (*ScopeSet, error) {
	if level <= LevelNotSet {
		return nil, slerror.Newf("root level %d must be positive, the root has no ancestor to inherit from", int(level)).
			WithCode(slerror.CodeInvalidLevel).
			WithOperation("log.NewScopeSetWithLevel")
	}
	return newScopeSet(level), nil
}

func newScopeSet(rootLevel Level) *ScopeSet {
	set := &ScopeSet{scopes: make(map[string]*Scope)}
	set.root = &Scope{set: set, level: rootLevel}
	return set
}

// Root returns the root scope of the set
func (s *ScopeSet) Root() *Scope {
	return s.root
}

// Scope returns the scope with the given dot-separated name, creating it
// and its ancestors on first use. A blank name returns the root.
func (s *ScopeSet) Scope(name string) *Scope {
	segments := stringx.SplitScope(stringx.Normalize(name))
	if len(segments) == 0 {
		return s.root
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parent := s.root
	for i := range segments {
		path := strings.Join(segments[:i+1], ".")
		scope, ok := s.scopes[path]
		if !ok {
			scope = &Scope{set: s, name: path, parent: parent, level: LevelNotSet}
			s.scopes[path] = scope
		}
		parent = scope
	}
	return parent
}

// Has reports whether a scope with the given name already exists
func (s *ScopeSet) Has(name string) bool {
	segments := stringx.SplitScope(stringx.Normalize(name))
	if len(segments) == 0 {
		return true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.scopes[strings.Join(segments, ".")]
	return ok
}

// Names returns the names of all non-root scopes, sorted
func (s *ScopeSet) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.scopes))
	for name := range s.scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the scope's dot-separated name, "" for the root
func (sc *Scope) Name() string {
	return sc.name
}

// IsRoot reports whether this is the root scope of its set
func (sc *Scope) IsRoot() bool {
	return sc.parent == nil
}

// Level returns the explicit threshold set on this scope. NotSet means the
// scope inherits; use EffectiveLevel for the threshold actually in force.
func (sc *Scope) Level() Level {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.level
}

// LevelName returns the name of the explicit threshold
func (sc *Scope) LevelName() string {
	return sc.Level().String()
}

// EffectiveLevel returns the threshold actually enforced for this scope,
// walking up the tree until an explicit level is found. The root always
// carries an explicit level, so for the root this equals Level().
func (sc *Scope) EffectiveLevel() Level {
	for s := sc; s != nil; s = s.parent {
		if level := s.Level(); level != LevelNotSet {
			return level
		}
	}
	// Unreachable for scopes created through a ScopeSet
	return DefaultLevel()
}

// EffectiveLevelName returns the name of the enforced threshold
func (sc *Scope) EffectiveLevelName() string {
	return sc.EffectiveLevel().String()
}

// SetLevel sets the explicit threshold on this scope. Non-root scopes may
// be set to NotSet to resume inheriting; the root cannot, it has no
// ancestor. Setting the current value again is a no-op.
func (sc *Scope) SetLevel(level Level) error {
	if level < LevelNotSet {
		return slerror.Newf("level %d must not be negative", int(level)).
			WithCode(slerror.CodeInvalidLevel).
			WithOperation("log.Scope.SetLevel").
			WithDetail("scope", sc.name)
	}
	if level == LevelNotSet && sc.IsRoot() {
		return slerror.New("the root scope cannot inherit, set an explicit level").
			WithCode(slerror.CodeInvalidLevel).
			WithOperation("log.Scope.SetLevel")
	}

	sc.mu.Lock()
	sc.level = level
	sc.mu.Unlock()
	return nil
}

// SetLevelName parses and sets the explicit threshold. Unknown names fail
// with CodeInvalidLevel and leave the scope unchanged.
func (sc *Scope) SetLevelName(name string) error {
	level, err := ParseLevel(name)
	if err != nil {
		return err
	}
	return sc.SetLevel(level)
}

// SetLevelMinimum sets the threshold only if it is more verbose (lower)
// than the currently effective one. Prevents downgrading a scope that was
// already opened up, e.g. from trace back to debug.
func (sc *Scope) SetLevelMinimum(level Level) error {
	if level <= LevelNotSet {
		return slerror.Newf("minimum level %d must be positive", int(level)).
			WithCode(slerror.CodeInvalidLevel).
			WithOperation("log.Scope.SetLevelMinimum").
			WithDetail("scope", sc.name)
	}

	if level >= sc.EffectiveLevel() {
		return nil
	}
	return sc.SetLevel(level)
}

// UseLevel temporarily overrides the threshold and returns a restore
// function. The previous explicit level (not the effective one) comes back
// when restore is called.
func (sc *Scope) UseLevel(level Level) (restore func(), err error) {
	previous := sc.Level()
	if err := sc.SetLevel(level); err != nil {
		return nil, err
	}
	return func() {
		sc.mu.Lock()
		sc.level = previous
		sc.mu.Unlock()
	}, nil
}

// IsEnabled reports whether a message at the given level would pass this
// scope's effective threshold
func (sc *Scope) IsEnabled(level Level) bool {
	return level.ShouldLog(sc.EffectiveLevel())
}

// Set returns the ScopeSet owning this scope
func (sc *Scope) Set() *ScopeSet {
	return sc.set
}

// --- Default set and root facade -------------------------------------------

var (
	defaultMu  sync.RWMutex
	defaultSet *ScopeSet
)

// Default returns the process-wide scope set, creating it on first use so
// that registrations made during program startup are honored
func Default() *ScopeSet {
	defaultMu.RLock()
	set := defaultSet
	defaultMu.RUnlock()
	if set != nil {
		return set
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSet == nil {
		defaultSet = NewScopeSet()
	}
	return defaultSet
}

// SetDefault replaces the process-wide scope set. Passing nil resets it,
// the next Default call builds a fresh tree.
func SetDefault(set *ScopeSet) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSet = set
}

// Root returns the root scope of the default set
func Root() *Scope {
	return Default().Root()
}

// GetScope returns a scope of the default set by name
func GetScope(name string) *Scope {
	return Default().Scope(name)
}

// SetRootLevel sets the explicit threshold on the root scope of the
// default set. Idempotent for repeated identical values.
func SetRootLevel(level Level) error {
	return Root().SetLevel(level)
}

// SetRootLevelName parses a level name and sets it on the root scope.
// Unknown names fail with CodeInvalidLevel.
func SetRootLevelName(name string) error {
	return Root().SetLevelName(name)
}

// RootLevel returns the explicit threshold currently set on the root scope
func RootLevel() Level {
	return Root().Level()
}

// RootLevelName returns the name of the root scope's explicit threshold
func RootLevelName() string {
	return Root().LevelName()
}

// EffectiveRootLevel returns the threshold actually enforced at the root.
// The root has no ancestor, so this always equals RootLevel.
func EffectiveRootLevel() Level {
	return Root().EffectiveLevel()
}

// EffectiveRootLevelName returns the name of the enforced root threshold
func EffectiveRootLevelName() string {
	return Root().EffectiveLevelName()
}
