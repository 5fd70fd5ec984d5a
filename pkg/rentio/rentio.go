// Package rentio wires the catalog store, index, matcher and
// dialogue engine into a single conversational assistant.
package rentio

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rentio/rentio/pkg/rentio/catalog"
	"github.com/rentio/rentio/pkg/rentio/dialog"
	"github.com/rentio/rentio/pkg/rentio/lexicon"
	"github.com/rentio/rentio/pkg/rentio/match"
	"github.com/rentio/rentio/pkg/rentio/nlp"
	"github.com/rentio/rentio/pkg/rentio/stoplist"
	"github.com/rentio/rentio/pkg/rentio/store"
)

// Options configures an Assistant.
type Options struct {
	Store    store.Store
	Tagger   nlp.Service
	Lexicon  *lexicon.Lexicon  // optional
	Stoplist *stoplist.Manager // optional
	Logger   *zap.Logger       // optional
}

// Assistant owns one conversation over one catalog.
type Assistant struct {
	store   store.Store
	index   *catalog.Index
	matcher *match.Matcher
	engine  *dialog.Engine
	session *dialog.Session
	log     *zap.Logger
}

// New builds the index from the store's entries and prepares a fresh
// session. The index is read-only from here on.
func New(ctx context.Context, opts Options) (*Assistant, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	entries, err := opts.Store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog entries: %w", err)
	}

	rows := make([]catalog.Row, len(entries))
	for i, e := range entries {
		rows[i] = catalog.Row{
			ID:       e.ID,
			Product:  e.Product,
			Brand:    e.Brand,
			Category: e.Category,
			Price:    e.Price,
		}
	}

	index, err := catalog.Build(rows, opts.Tagger)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	var matchOpts []match.Option
	if opts.Lexicon != nil {
		matchOpts = append(matchOpts, match.WithLexicon(opts.Lexicon))
	}
	if opts.Stoplist != nil {
		matchOpts = append(matchOpts, match.WithStoplist(opts.Stoplist))
	}

	session := dialog.NewSession()
	log.Info("assistant ready",
		zap.String("session", session.ID),
		zap.Int("entries", len(entries)))

	return &Assistant{
		store:   opts.Store,
		index:   index,
		matcher: match.New(index, opts.Tagger, matchOpts...),
		engine:  dialog.NewEngine(index, opts.Tagger, log),
		session: session,
		log:     log,
	}, nil
}

// LoadRows appends source rows into a catalog store.
func LoadRows(ctx context.Context, st store.Store, rows []catalog.Row) error {
	for _, row := range rows {
		entry := store.Entry{
			ID:       row.ID,
			Product:  row.Product,
			Brand:    row.Brand,
			Category: row.Category,
			Price:    row.Price,
		}
		if err := st.AppendEntry(ctx, entry); err != nil {
			return fmt.Errorf("append %q: %w", row.Product, err)
		}
	}
	return nil
}

// Greeting returns the session-start greeting.
func (a *Assistant) Greeting() string {
	return dialog.Greeting
}

// SessionID returns the current session's identifier.
func (a *Assistant) SessionID() string {
	return a.session.ID
}

// Turn processes one utterance and returns the response plus whether
// the session has ended.
func (a *Assistant) Turn(utterance string) (string, bool, error) {
	utterance = strings.ToLower(strings.TrimSpace(utterance))

	found, err := a.matcher.Match(utterance)
	if err != nil {
		return "", false, err
	}

	resp, outcome, err := a.engine.Respond(a.session, utterance, found)
	if err != nil {
		return "", false, err
	}
	return resp, outcome == dialog.Exit, nil
}

// Close releases the underlying store.
func (a *Assistant) Close() error {
	return a.store.Close()
}
