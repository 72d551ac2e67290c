package game

import (
	"testing"

	utils "prefsty/internal"
)

func TestRespondingBothAccept(t *testing.T) {
	s := applyAll(t, respondingFixture(t),
		NewAction(1, ActionAcceptContract),
		NewAction(2, ActionAcceptContract),
	)

	t.Log("with both accepting, the help/contre round opens")
	assertPhase(t, s, PhaseHelpOrContre)
	utils.AssertEqual(t, s.HelpOrContre.Responses[1], ResponseAccepted)
	utils.AssertEqual(t, s.HelpOrContre.Responses[2], ResponseAccepted)
}

func TestRespondingBothReject(t *testing.T) {
	s := applyAll(t, respondingFixture(t),
		NewAction(1, ActionRejectContract),
		NewAction(2, ActionRejectContract),
	)

	t.Log("a double rejection pays the declarer at base stake and redeals")
	assertPhase(t, s, PhaseBidding)
	utils.AssertEqual(t, s.First, 1)
	utils.AssertEqual(t, s.Score[0].Bulls, 68)
	utils.AssertEqual(t, s.Score[1].Bulls, 60)
	utils.AssertEqual(t, s.Score[2].Bulls, 60)
}

func TestRespondingDeclarerMayNotRespond(t *testing.T) {
	s := respondingFixture(t)

	_, err := s.Apply(NewAction(0, ActionAcceptContract), testRand())
	if err != ErrInvalidTurn {
		t.Fatalf("got %v, want %v", err, ErrInvalidTurn)
	}
}

func TestHelpOrContreAllPass(t *testing.T) {
	s := applyAll(t, respondingFixture(t),
		NewAction(1, ActionAcceptContract),
		NewAction(2, ActionAcceptContract),
		NewAction(0, ActionPassHelpContre),
		NewAction(1, ActionPassHelpContre),
		NewAction(2, ActionPassHelpContre),
	)

	t.Log("once the turn would return to the declarer, play begins")
	assertPhase(t, s, PhasePlaying)
	utils.AssertEqual(t, s.Playing.Level, NoContre)
	utils.AssertEqual(t, s.Playing.Declarer, 0)
	utils.AssertEqual(t, s.Turn, 0)
}

func TestCallForHelp(t *testing.T) {
	s := applyAll(t, respondingFixture(t),
		NewAction(1, ActionAcceptContract),
		NewAction(2, ActionRejectContract),
		NewAction(0, ActionPassHelpContre),
		NewAction(1, ActionCallForHelp),
	)

	t.Log("the caller drags the rejecting partner back into play")
	assertPhase(t, s, PhasePlaying)
	utils.AssertEqual(t, s.Playing.Responses[1], ResponseCaller)
	utils.AssertEqual(t, s.Playing.Responses[2], ResponseCalled)
	utils.AssertEqual(t, s.Playing.Level, NoContre)
}

func TestCallForHelpNeedsRejectedPartner(t *testing.T) {
	s := applyAll(t, respondingFixture(t),
		NewAction(1, ActionAcceptContract),
		NewAction(2, ActionAcceptContract),
		NewAction(0, ActionPassHelpContre),
	)

	_, err := s.Apply(NewAction(1, ActionCallForHelp), testRand())
	if err != ErrBadAction {
		t.Fatalf("got %v, want %v", err, ErrBadAction)
	}
}

func TestDeclarerMayNotHelpOrContre(t *testing.T) {
	s := applyAll(t, respondingFixture(t),
		NewAction(1, ActionAcceptContract),
		NewAction(2, ActionAcceptContract),
	)
	utils.AssertEqual(t, s.Turn, 0)

	if _, err := s.Apply(NewAction(0, ActionCallForHelp), testRand()); err != ErrBadAction {
		t.Fatalf("got %v, want %v", err, ErrBadAction)
	}
	if _, err := s.Apply(NewAction(0, ActionDeclareContre), testRand()); err != ErrBadAction {
		t.Fatalf("got %v, want %v", err, ErrBadAction)
	}
}

// contreFixture opens the escalation: seat 1 contres seat 0's Hearts
func contreFixture(t *testing.T) State {
	t.Helper()

	s := applyAll(t, respondingFixture(t),
		NewAction(1, ActionAcceptContract),
		NewAction(2, ActionAcceptContract),
		NewAction(0, ActionPassHelpContre),
		NewAction(1, ActionDeclareContre),
	)
	assertPhase(t, s, PhaseContreDeclared)
	return s
}

func TestContreDeclared(t *testing.T) {
	s := contreFixture(t)

	utils.AssertEqual(t, s.ContreDeclared.Level, Contre)
	utils.AssertEqual(t, s.ContreDeclared.Responses[1], ResponseContrer)
	utils.AssertEqual(t, s.ContreDeclared.Responses[2], ResponseCalled)

	t.Log("the declarer answers the contre")
	utils.AssertEqual(t, s.Turn, 0)
}

func TestContreEscalationAlternates(t *testing.T) {
	s := applyAll(t, contreFixture(t), NewAction(0, ActionDeclareContre))

	utils.AssertEqual(t, s.ContreDeclared.Level, Recontre)
	utils.AssertEqual(t, s.Turn, 1)

	s = applyAll(t, s, NewAction(1, ActionDeclareContre))
	utils.AssertEqual(t, s.ContreDeclared.Level, Subcontre)
	utils.AssertEqual(t, s.Turn, 0)
}

func TestContreTopForcesPlay(t *testing.T) {
	s := applyAll(t, contreFixture(t),
		NewAction(0, ActionDeclareContre),
		NewAction(1, ActionDeclareContre),
		NewAction(0, ActionDeclareContre),
	)

	t.Log("the ladder tops out and play begins at the final level")
	assertPhase(t, s, PhasePlaying)
	utils.AssertEqual(t, s.Playing.Level, FuckYouContre)
}

func TestContrePassSettlesLevel(t *testing.T) {
	s := applyAll(t, contreFixture(t), NewAction(0, ActionPassHelpContre))

	assertPhase(t, s, PhasePlaying)
	utils.AssertEqual(t, s.Playing.Level, Contre)
	utils.AssertEqual(t, s.Playing.Responses[1], ResponseContrer)
}
