package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/astelice/cling/internal/config"
	"github.com/astelice/cling/internal/content"
	"github.com/astelice/cling/internal/core"
	"github.com/astelice/cling/internal/minigames"
)

// Phase is the session's top-level state.
type Phase uint8

const (
	// PhaseIntro shows the warning overlay before play starts.
	PhaseIntro Phase = iota
	// PhasePlaying runs the main simulation.
	PhasePlaying
	// PhaseChallenge freezes the simulation while a minigame runs.
	PhaseChallenge
	// PhaseGameOver waits for a restart.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseChallenge:
		return "challenge"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason records why a run ended.
type EndReason uint8

const (
	EndNone EndReason = iota
	// EndDepleted fires when any companion's happiness hits zero.
	EndDepleted
	// EndPromptExpired fires when a prompt goes unanswered.
	EndPromptExpired
	// EndWrongReply fires when the player picks the wrong reply.
	EndWrongReply
	// EndChallengeFailed fires when a minigame is lost.
	EndChallengeFailed
)

// String returns a human-readable end reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndDepleted:
		return "a companion was left alone too long"
	case EndPromptExpired:
		return "a message went unanswered"
	case EndWrongReply:
		return "that was the wrong thing to say"
	case EndChallengeFailed:
		return "you failed her little game"
	default:
		return "unknown"
	}
}

// StepResult is what the platform needs back from one tick.
type StepResult struct {
	Phase     Phase
	Survival  int
	JustEnded bool // true exactly on the tick the run ended
}

// Session owns one player's full game state: the active roster, the pending
// prompt, the deadline scheduler, the active minigame, and the in-memory
// high-score list. It is a pure state machine: the platform feeds it one
// InputFrame per tick via Step and renders from Snapshot; nothing in here
// touches the clock, the terminal, or storage.
type Session struct {
	cfg *config.Config
	lib *content.Library
	rt  core.RuntimeConfig
	rng *rand.Rand

	playArea core.Rect

	simTick   uint64
	phase     Phase
	endReason EndReason
	justEnded bool

	survival int // seconds survived this run

	roster  []*Companion
	nextDef int // next library companion to activate on a milestone

	prompt       *Prompt
	nextPromptID int64

	sched    *Scheduler
	introDue uint64

	challenge        minigames.Challenge
	challengeApplied bool

	highScores []int
}

// NewSession creates a session and starts the intro.
// A zero seed is replaced with the wall clock so casual runs differ;
// a fixed seed gives a fully deterministic run.
func NewSession(cfg *config.Config, lib *content.Library, rt core.RuntimeConfig) *Session {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:      cfg,
		lib:      lib,
		rt:       rt,
		rng:      rand.New(rand.NewSource(rt.Seed)),
		playArea: core.NewRect(0, 0, rt.ScreenW, rt.ScreenH),
		sched:    NewScheduler(),
	}
	s.start(true)
	return s
}

// SetPlayArea updates the region companions may occupy.
// Called by the platform on terminal resize; companions outside the new
// area snap back in on their next move.
func (s *Session) SetPlayArea(area core.Rect) {
	s.playArea = area
}

// start resets per-run state. The high-score list and the simulation tick
// counter survive across runs; every deadline is dropped so nothing stale
// fires into the new run.
func (s *Session) start(withIntro bool) {
	s.sched.Reset()
	s.endReason = EndNone
	s.survival = 0
	s.prompt = nil
	s.challenge = nil
	s.challengeApplied = false

	initial := core.Clamp(s.cfg.Session.InitialRoster, 1, len(s.lib.Companions))
	s.roster = make([]*Companion, 0, len(s.lib.Companions))
	for _, def := range s.lib.Companions[:initial] {
		s.roster = append(s.roster, spawnCompanion(s.rng, def, s.playArea, s.cfg.Companions))
	}
	s.nextDef = initial

	if withIntro {
		s.phase = PhaseIntro
		s.introDue = s.simTick + uint64(s.cfg.Session.IntroSeconds*s.rt.TickRate)
		s.sched.After(s.introDue, TimerIntro, 0)
	} else {
		s.beginPlay()
	}
}

// beginPlay enters the playing phase and arms the first prompt.
func (s *Session) beginPlay() {
	s.phase = PhasePlaying
	s.schedulePromptSpawn()
}

// Step advances the session by one master tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	s.justEnded = false

	switch s.phase {
	case PhaseIntro:
		s.stepIntro(in)
	case PhasePlaying:
		s.stepPlaying(in)
	case PhaseChallenge:
		s.stepChallenge(in)
	case PhaseGameOver:
		s.stepGameOver(in)
	}

	return StepResult{Phase: s.phase, Survival: s.survival, JustEnded: s.justEnded}
}

func (s *Session) stepIntro(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		s.sched.CancelKind(TimerIntro)
		s.beginPlay()
		return
	}

	s.simTick++
	for _, d := range s.sched.Due(s.simTick) {
		if d.Kind == TimerIntro {
			s.beginPlay()
		}
	}
}

// stepPlaying runs one simulation tick: input first, then motion, then the
// once-per-second decay block, then due deadlines. Input going first means a
// reply that arrives on a prompt's expiry tick wins over the auto-fail.
func (s *Session) stepPlaying(in core.InputFrame) {
	s.applyClicks(in.Clicks)
	s.applyReply(in.Reply)
	if s.phase != PhasePlaying {
		return
	}

	s.simTick++

	for _, c := range s.roster {
		c.Move(s.rng, s.playArea, s.cfg.Companions)
	}

	if s.simTick%uint64(s.rt.TickRate) == 0 {
		s.survival++
		for _, c := range s.roster {
			c.Decay(s.cfg.Companions.DecayAmount)
		}
		if s.anyDepleted() {
			s.endGame(EndDepleted)
			return
		}
		if s.cfg.Challenges.MilestoneSeconds > 0 && s.survival%s.cfg.Challenges.MilestoneSeconds == 0 {
			s.milestone()
			return
		}
	}

	for _, d := range s.sched.Due(s.simTick) {
		switch d.Kind {
		case TimerPromptSpawn:
			s.spawnPrompt()
		case TimerPromptFail:
			if s.prompt != nil && s.prompt.ID == d.Ref {
				s.endGame(EndPromptExpired)
				return
			}
		}
	}
}

// stepChallenge forwards ticks to the active minigame. The simulation tick
// counter does not advance, so every pending deadline and all decay freeze
// until the challenge resolves.
func (s *Session) stepChallenge(in core.InputFrame) {
	if s.challenge == nil {
		s.phase = PhasePlaying
		return
	}

	s.challenge.Step(in)

	outcome, done := s.challenge.Outcome()
	if !done || s.challengeApplied {
		return
	}
	s.challengeApplied = true
	s.challenge = nil

	if outcome == minigames.OutcomeSuccess {
		s.boostAll(s.cfg.Challenges.SuccessBoost)
		s.phase = PhasePlaying
		return
	}
	s.endGame(EndChallengeFailed)
}

func (s *Session) stepGameOver(in core.InputFrame) {
	if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
		s.start(false)
	}
}

// applyClicks hit-tests raw play-area clicks against the roster.
// Each click pets at most one companion; overlapping sprites go to the
// later-drawn one so what the player sees on top is what they pet.
func (s *Session) applyClicks(clicks []core.Click) {
	for _, click := range clicks {
		for i := len(s.roster) - 1; i >= 0; i-- {
			if s.roster[i].Contains(click.X, click.Y, s.cfg.Companions) {
				s.roster[i].Boost(s.cfg.Companions.ClickBoost)
				break
			}
		}
	}
}

// applyReply resolves the pending prompt if the reply addresses it.
// Replies to an already-resolved prompt are ignored.
func (s *Session) applyReply(reply *core.ReplyChoice) {
	if reply == nil || s.prompt == nil || reply.PromptID != s.prompt.ID {
		return
	}
	if reply.Index < 0 || reply.Index >= len(s.prompt.Choices) {
		return
	}

	p := s.prompt
	s.prompt = nil
	s.sched.Cancel(p.failTimer)

	if reply.Index == p.Wrong {
		s.endGame(EndWrongReply)
		return
	}
	s.boostAll(s.cfg.Prompts.ReplyBoost)
	s.schedulePromptSpawn()
}

func (s *Session) schedulePromptSpawn() {
	delayMS := s.cfg.Prompts.MinDelayMS
	if span := s.cfg.Prompts.MaxDelayMS - s.cfg.Prompts.MinDelayMS; span > 0 {
		delayMS += s.rng.Intn(span)
	}
	s.sched.After(s.simTick+s.msToTicks(delayMS), TimerPromptSpawn, 0)
}

func (s *Session) spawnPrompt() {
	s.nextPromptID++
	def := s.lib.Prompts[s.rng.Intn(len(s.lib.Prompts))]
	from := s.roster[s.rng.Intn(len(s.roster))].Def.Name

	p := buildPrompt(s.nextPromptID, s.rng, def, from)
	p.failDue = s.simTick + s.msToTicks(s.cfg.Prompts.WindowMS)
	p.failTimer = s.sched.After(p.failDue, TimerPromptFail, p.ID)
	s.prompt = p
}

// milestone fires every MilestoneSeconds of survival: the roster grows by
// one if the library has a companion left, and a minigame interrupts play.
func (s *Session) milestone() {
	if s.nextDef < len(s.lib.Companions) {
		def := s.lib.Companions[s.nextDef]
		s.nextDef++
		s.roster = append(s.roster, spawnCompanion(s.rng, def, s.playArea, s.cfg.Companions))
	}

	difficulty := s.survival / 60

	c := minigames.Pick(s.rng, difficulty, s.cfg.Challenges, s.lib)
	if c == nil {
		return
	}
	c.Begin(s.rng, s.rt.TickRate, difficulty)
	s.challenge = c
	s.challengeApplied = false
	s.phase = PhaseChallenge
}

func (s *Session) boostAll(amount int) {
	for _, c := range s.roster {
		c.Boost(amount)
	}
}

func (s *Session) anyDepleted() bool {
	for _, c := range s.roster {
		if c.Depleted() {
			return true
		}
	}
	return false
}

// endGame ends the run exactly once, records the score, and drops every
// pending deadline so nothing fires into the game-over screen.
func (s *Session) endGame(reason EndReason) {
	if s.phase == PhaseGameOver {
		return
	}
	s.phase = PhaseGameOver
	s.endReason = reason
	s.justEnded = true
	s.prompt = nil
	s.challenge = nil
	s.sched.Reset()
	s.recordScore(s.survival)
}

// recordScore merges one score into the local top list: duplicates
// collapse, order is descending, length caps at ten.
func (s *Session) recordScore(score int) {
	for _, existing := range s.highScores {
		if existing == score {
			return
		}
	}
	s.highScores = append(s.highScores, score)
	sort.Sort(sort.Reverse(sort.IntSlice(s.highScores)))
	if len(s.highScores) > 10 {
		s.highScores = s.highScores[:10]
	}
}

// MergeHighScores folds previously persisted scores into the local list.
func (s *Session) MergeHighScores(scores []int) {
	for _, score := range scores {
		s.recordScore(score)
	}
}

// HighScores returns a copy of the current top list, best first.
func (s *Session) HighScores() []int {
	out := make([]int, len(s.highScores))
	copy(out, s.highScores)
	return out
}

// Phase returns the current top-level state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Survival returns the seconds survived this run.
func (s *Session) Survival() int {
	return s.survival
}

func (s *Session) msToTicks(ms int) uint64 {
	t := uint64(ms * s.rt.TickRate / 1000)
	if t == 0 {
		t = 1
	}
	return t
}
