// ============================================================================
// lambda - Lambda Calculus Front End
// ============================================================================
//
// Package:     repl
// Description: REPL session: evaluates input lines and colon commands
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	lclog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/foundation/lambda"
	lcast "github.com/msto63/lambda/foundation/lambda/ast"
	lcparser "github.com/msto63/lambda/foundation/lambda/parser"
	"github.com/msto63/lambda/internal/history"
	"github.com/msto63/lambda/internal/printer"
	"github.com/msto63/lambda/pkg/core/cache"
)

// DefaultHistoryLimit is the number of entries :history lists without argument
const DefaultHistoryLimit = 10

// Options are the display options toggled with :options
type Options struct {
	ShowAST    bool
	ShowTokens bool
	ShowSource bool
	ShowType   bool
}

// optionNames maps :options names to their fields
var optionNames = map[string]func(*Options) *bool{
	"ast":    func(o *Options) *bool { return &o.ShowAST },
	"tokens": func(o *Options) *bool { return &o.ShowTokens },
	"source": func(o *Options) *bool { return &o.ShowSource },
	"type":   func(o *Options) *bool { return &o.ShowType },
}

// ResponseKind classifies a Response
type ResponseKind int

const (
	// ResponseEmpty is returned for blank lines
	ResponseEmpty ResponseKind = iota
	ResponseResult
	ResponseInfo
	ResponseError
	ResponseQuit
)

// Response is the outcome of evaluating one line
type Response struct {
	Kind   ResponseKind
	Input  string
	Output string
	Err    error
}

// Config configures a Session
type Config struct {
	Frontend *lambda.Frontend
	// Optional; nil disables recording and :history
	History history.Store
	Logger  *lclog.Logger
	Options Options
	Color   printer.ColorMode
	// Parse results kept in memory; zero disables the cache
	CacheSize    int
	HistoryLimit int
}

// Session holds the state of one REPL run. It is not safe for concurrent use.
type Session struct {
	id       string
	frontend *lambda.Frontend
	store    history.Store
	logger   *lclog.Logger
	opts     Options
	color    printer.ColorMode
	cache    *cache.Cache[*lambda.Result]
	limit    int
	commands []Command
	started  time.Time
}

// NewSession creates a session with a fresh ID
func NewSession(cfg Config) *Session {
	if cfg.Logger == nil {
		cfg.Logger = lclog.GetDefault()
	}
	if cfg.Frontend == nil {
		cfg.Frontend = lambda.New(lambda.Options{Logger: cfg.Logger})
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}

	id := uuid.New().String()
	s := &Session{
		id:       id,
		frontend: cfg.Frontend,
		store:    cfg.History,
		logger:   cfg.Logger.WithSessionID(id).WithField("component", "repl"),
		opts:     cfg.Options,
		color:    cfg.Color,
		limit:    cfg.HistoryLimit,
		commands: builtinCommands(),
		started:  time.Now(),
	}
	if cfg.CacheSize > 0 {
		s.cache = cache.New[*lambda.Result](cache.Config{MaxItems: cfg.CacheSize})
	}

	s.logger.Info("session started", lclog.Fields{"history": s.store != nil})
	return s
}

// ID returns the session ID recorded with every history entry
func (s *Session) ID() string {
	return s.id
}

// Options returns the current display options
func (s *Session) Options() Options {
	return s.opts
}

// Eval evaluates one line: a colon command or source text
func (s *Session) Eval(ctx context.Context, line string) Response {
	input := strings.TrimSpace(line)
	if input == "" {
		return Response{Kind: ResponseEmpty}
	}

	if IsCommand(input) {
		cmd, name, args := s.parseCommand(input)
		if cmd == nil {
			s.logger.Debug("invalid command", lclog.Fields{"command": name})
			return Response{
				Kind:   ResponseError,
				Input:  input,
				Output: fmt.Sprintf("Invalid command %s%s, type :help for a list of commands", CommandPrefix, name),
			}
		}
		resp := cmd.run(s, ctx, args)
		resp.Input = input
		return resp
	}

	result, err := s.parse(input)
	s.record(ctx, input, result, err)
	if err != nil {
		return s.errorResponse(input, err)
	}
	return Response{Kind: ResponseResult, Input: input, Output: s.render(result)}
}

// Close logs the end of the session and closes the history store
func (s *Session) Close() error {
	fields := lclog.Fields{"duration_ms": time.Since(s.started).Milliseconds()}
	if s.cache != nil {
		hits, misses, _ := s.cache.Stats()
		fields["cache_hits"] = hits
		fields["cache_misses"] = misses
	}
	s.logger.Info("session ended", fields)

	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// RecentInputs returns up to n recorded inputs, oldest first, for input
// line navigation
func (s *Session) RecentInputs(ctx context.Context, n int) []string {
	if s.store == nil {
		return nil
	}
	entries, err := s.store.Recent(ctx, n)
	if err != nil {
		s.logger.WarnWithErr("failed to load history", err)
		return nil
	}

	inputs := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		inputs = append(inputs, entries[i].Input)
	}
	return inputs
}

func (s *Session) parse(input string) (*lambda.Result, error) {
	if s.cache == nil {
		return s.frontend.Parse(input)
	}
	return s.cache.GetOrSet(input, func() (*lambda.Result, error) {
		return s.frontend.Parse(input)
	})
}

func (s *Session) record(ctx context.Context, input string, result *lambda.Result, parseErr error) {
	if s.store == nil {
		return
	}

	entry := &history.Entry{SessionID: s.id, Input: input, OK: parseErr == nil}
	if result != nil {
		entry.Mode = result.Mode.String()
	}
	if parseErr != nil {
		entry.Error = describeError(parseErr)
	}

	if err := s.store.Record(ctx, entry); err != nil {
		s.logger.WarnWithErr("failed to record history", err)
	}
}

// render formats a successful parse according to the display options
func (s *Session) render(result *lambda.Result) string {
	var sections []string

	if s.opts.ShowTokens {
		if tokens, err := s.frontend.Tokenize(result.Input); err == nil {
			sections = append(sections, FormatTokens(tokens))
		}
	}
	if s.opts.ShowSource {
		sections = append(sections, "Source: "+lcast.Format(result.Tree))
	}
	if s.opts.ShowType && !s.opts.ShowAST {
		sections = append(sections, "Type: "+typeOf(result.Tree))
	}
	if s.opts.ShowAST {
		var buf bytes.Buffer
		p := printer.New(&buf, printer.Options{Color: s.color, ShowTypes: s.opts.ShowType})
		if err := p.Print(result.Tree); err == nil {
			sections = append(sections, strings.TrimRight(buf.String(), "\n"))
		}
	}

	if len(sections) == 0 {
		return "ok (" + result.Mode.String() + ")"
	}
	return strings.Join(sections, "\n")
}

func (s *Session) errorResponse(input string, err error) Response {
	out := "Error parsing: " + describeError(err)

	var perr *lcparser.ParseError
	if errors.As(err, &perr) {
		if pos, ok := perr.Position(); ok && !strings.Contains(input, "\n") {
			out += "\n  " + input + "\n  " + strings.Repeat(" ", pos.Column-1) + "^"
		}
	}
	return Response{Kind: ResponseError, Input: input, Output: out, Err: err}
}

func (s *Session) cmdHelp(_ context.Context, _ string) Response {
	var b strings.Builder
	b.WriteString("Enter an expression or an assignment (name = expr) to see its syntax tree.\n")
	b.WriteString("Commands:\n")

	width := 0
	for _, c := range s.commands {
		if len(c.Usage) > width {
			width = len(c.Usage)
		}
	}
	for _, c := range s.commands {
		fmt.Fprintf(&b, "  %-*s  (:%s)  %s\n", width, c.Usage, c.Short, c.Help)
	}
	return Response{Kind: ResponseInfo, Output: strings.TrimRight(b.String(), "\n")}
}

func (s *Session) cmdType(_ context.Context, args string) Response {
	if args == "" {
		return Response{Kind: ResponseError, Output: "Usage: :type <expr>"}
	}

	result, err := s.parse(args)
	if err != nil {
		return s.errorResponse(args, err)
	}
	return Response{Kind: ResponseResult, Output: lcast.Format(result.Tree) + " : " + typeOf(result.Tree)}
}

func (s *Session) cmdOptions(_ context.Context, args string) Response {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return Response{Kind: ResponseInfo, Output: s.describeOptions()}
	}

	field, ok := optionNames[strings.ToLower(fields[0])]
	if !ok {
		return Response{Kind: ResponseError, Output: fmt.Sprintf("Unknown option %q, expected one of %s", fields[0], strings.Join(sortedOptionNames(), ", "))}
	}

	target := field(&s.opts)
	switch {
	case len(fields) == 1:
		*target = !*target
	case len(fields) == 2 && (fields[1] == "on" || fields[1] == "off"):
		*target = fields[1] == "on"
	default:
		return Response{Kind: ResponseError, Output: "Usage: :options [ast|tokens|source|type] [on|off]"}
	}

	s.logger.Debug("option changed", lclog.Fields{"option": fields[0], "value": *target})
	return Response{Kind: ResponseInfo, Output: s.describeOptions()}
}

func (s *Session) describeOptions() string {
	var b strings.Builder
	b.WriteString("Options:")
	for _, name := range sortedOptionNames() {
		state := "off"
		if *optionNames[name](&s.opts) {
			state = "on"
		}
		fmt.Fprintf(&b, "\n  %-6s  %s", name, state)
	}
	return b.String()
}

func (s *Session) cmdTokens(_ context.Context, args string) Response {
	if args == "" {
		return Response{Kind: ResponseError, Output: "Usage: :tokens <input>"}
	}

	tokens, err := s.frontend.Tokenize(args)
	if err != nil {
		return Response{Kind: ResponseError, Output: "Error: " + err.Error(), Err: err}
	}
	return Response{Kind: ResponseResult, Output: FormatTokens(tokens)}
}

func (s *Session) cmdHistory(ctx context.Context, args string) Response {
	if s.store == nil {
		return Response{Kind: ResponseInfo, Output: "History is disabled"}
	}

	n := s.limit
	if args != "" {
		v, err := strconv.Atoi(args)
		if err != nil || v <= 0 {
			return Response{Kind: ResponseError, Output: "Usage: :history [n]"}
		}
		n = v
	}

	entries, err := s.store.Recent(ctx, n)
	if err != nil {
		s.logger.WarnWithErr("failed to load history", err)
		return Response{Kind: ResponseError, Output: "Error: " + err.Error(), Err: err}
	}
	if len(entries) == 0 {
		return Response{Kind: ResponseInfo, Output: "No history yet"}
	}
	return Response{Kind: ResponseInfo, Output: FormatHistory(entries)}
}

func (s *Session) cmdQuit(_ context.Context, _ string) Response {
	return Response{Kind: ResponseQuit}
}

// describeError returns the core parse error message when there is one
func describeError(err error) string {
	var perr *lcparser.ParseError
	if errors.As(err, &perr) {
		return perr.Error()
	}
	return err.Error()
}

func typeOf(n *lcast.Node) string {
	if n == nil || n.Type == nil {
		return lcast.Unknown.String()
	}
	return n.Type.String()
}

func sortedOptionNames() []string {
	names := make([]string, 0, len(optionNames))
	for name := range optionNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
