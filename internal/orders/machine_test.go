package orders

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func standardBoard() []boardOption {
	return []boardOption{
		withArmy("ber", 0, 0),
		withArmy("mun", 100, 0),
		withLand("sil", 100, 100),
		withFleet("kie", 0, 100, "land"),
		withFleet("nth", 200, 0, "sea"),
		withSea("hel", 200, 100),
		withLand("spa", 300, 300),
		withCoast("spa_nc", "spa", 290, 280),
	}
}

func TestMachine_MoveForEveryUnit(t *testing.T) {
	board := newTestBoard(standardBoard()...)
	for _, origin := range []string{"ber", "mun", "kie", "nth"} {
		s, _, _ := newTestSession(t, board)
		require.True(t, s.Click(ButtonPrimary, origin))
		require.True(t, s.Click(ButtonPrimary, "sil"))

		require.Equal(t, []Order{Move(origin, "sil")}, s.Store.Orders(), origin)
		require.True(t, s.Machine.Idle())
	}
}

func TestMachine_IntermediateClicksStoreNothing(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "ber")
	require.Zero(t, s.Store.Len())
	s.Click(ButtonSecondary, "mun")
	require.Zero(t, s.Store.Len())

	require.Equal(t, Slot{
		Step:   Step{Kind: StepAwaitSupportDestination, Origin: "ber", Support: "mun"},
		Filter: FilterProvince,
	}, s.Machine.Primary)
	require.Equal(t, s.Machine.Primary, s.Machine.Secondary, "secondary aliases primary")
}

func TestMachine_SupportToMove(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "ber")
	s.Click(ButtonSecondary, "mun")
	s.Click(ButtonPrimary, "sil")

	o, ok := s.Store.Get("ber")
	require.True(t, ok)
	require.Equal(t, Support("ber", "mun", "sil"), o)
	require.Equal(t, []string{"ber Supports mun -> sil"}, s.Panel.Lines())
}

func TestMachine_SupportDestinationBySecondary(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "ber")
	s.Click(ButtonSecondary, "mun")
	s.Click(ButtonSecondary, "mun")

	o, _ := s.Store.Get("ber")
	require.True(t, o.SupportsHold())
	require.Equal(t, []string{"ber Supports mun Hold"}, s.Panel.Lines())
}

func TestMachine_SupportOriginIgnoresEmpty(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "ber")
	require.False(t, s.Click(ButtonSecondary, "sil"), "support origin step is unit-filtered")
	require.Equal(t, StepAwaitSupportOrigin, s.Machine.Secondary.Step.Kind)
}

func TestMachine_ArmyCoastRemapped(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "ber")
	s.Click(ButtonPrimary, "spa_nc")
	o, _ := s.Store.Get("ber")
	require.Equal(t, Move("ber", "spa"), o)

	s.Click(ButtonPrimary, "mun")
	s.Click(ButtonSecondary, "ber")
	s.Click(ButtonPrimary, "spa_nc")
	o, _ = s.Store.Get("mun")
	require.Equal(t, Support("mun", "ber", "spa"), o)
}

func TestMachine_FleetCoastKept(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "kie")
	s.Click(ButtonPrimary, "spa_nc")
	o, _ := s.Store.Get("kie")
	require.Equal(t, Move("kie", "spa_nc"), o)
}

func TestMachine_CoreOnLand(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonSecondary, "ber")
	o, ok := s.Store.Get("ber")
	require.True(t, ok)
	require.Equal(t, Core("ber"), o)
	require.True(t, s.Machine.Idle())
}

func TestMachine_ToggleBackToHold(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "mun")
	s.Click(ButtonPrimary, "sil")
	s.Click(ButtonSecondary, "ber")
	s.Click(ButtonSecondary, "ber")

	o, _ := s.Store.Get("ber")
	require.Equal(t, Hold("ber"), o)
	m, _ := s.Store.Get("mun")
	require.Equal(t, Move("mun", "sil"), m, "other orders untouched")

	// Hold is not toggled; a third click cores again.
	s.Click(ButtonSecondary, "ber")
	o, _ = s.Store.Get("ber")
	require.Equal(t, Core("ber"), o)
}

func TestMachine_ConvoyFromSea(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	require.True(t, s.Click(ButtonSecondary, "nth"))
	require.Equal(t, s.Machine.Primary, s.Machine.Secondary)
	require.Equal(t, FilterUnit, s.Machine.Primary.Filter)

	require.True(t, s.Click(ButtonPrimary, "ber"))
	require.Equal(t, FilterProvince, s.Machine.Primary.Filter)
	require.Zero(t, s.Store.Len())

	require.True(t, s.Click(ButtonSecondary, "sil"))
	require.Equal(t, []Order{
		Move("ber", "sil"),
		Convoy("nth", "ber", "sil"),
	}, s.Store.Orders())
	require.True(t, s.Machine.Idle())
	require.Equal(t, []string{"ber -> sil", "nth Convoys ber -> sil"}, s.Panel.Lines())
}

func TestMachine_ConvoyToggleOff(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonSecondary, "nth")
	s.Click(ButtonPrimary, "ber")
	s.Click(ButtonPrimary, "sil")
	s.Click(ButtonSecondary, "nth")

	o, _ := s.Store.Get("nth")
	require.Equal(t, Hold("nth"), o)
	b, _ := s.Store.Get("ber")
	require.Equal(t, Move("ber", "sil"), b)
}

func TestMachine_EmptySeaIgnoredByDefaultFilter(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	require.False(t, s.Click(ButtonSecondary, "hel"))
	require.True(t, s.Machine.Idle())
}

func TestMachine_NewSequenceAbandonsPending(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "ber")
	s.Click(ButtonSecondary, "mun")
	// Abandon ber's support: the next primary click is consumed as its destination.
	s.Click(ButtonPrimary, "kie")
	o, _ := s.Store.Get("ber")
	require.Equal(t, Support("ber", "mun", "kie"), o)

	s.Click(ButtonPrimary, "mun")
	s.Machine.Reset()
	s.Click(ButtonPrimary, "kie")
	require.Equal(t, StepAwaitDestination, s.Machine.Primary.Step.Kind)
	require.Equal(t, "kie", s.Machine.Primary.Step.Origin)
}

func TestMachine_MutualSupportHoldSyncsOnce(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "ber")
	s.Click(ButtonSecondary, "mun")
	s.Click(ButtonPrimary, "mun")

	s.Click(ButtonPrimary, "mun")
	s.Click(ButtonSecondary, "ber")
	s.Click(ButtonPrimary, "ber")

	a, _ := s.Store.Get("ber")
	b, _ := s.Store.Get("mun")
	require.False(t, a.Sync)
	require.True(t, b.Sync)

	// Re-issuing ber's support finds mun already synced and draws plainly.
	s.Click(ButtonPrimary, "ber")
	s.Click(ButtonSecondary, "mun")
	s.Click(ButtonPrimary, "mun")
	a, _ = s.Store.Get("ber")
	b, _ = s.Store.Get("mun")
	require.False(t, a.Sync)
	require.True(t, b.Sync)
}

func TestStep_String(t *testing.T) {
	require.Equal(t, "ber: support mun into", Step{Kind: StepAwaitSupportDestination, Origin: "ber", Support: "mun"}.String())
	require.Equal(t, "select a unit", defaultPrimary.Step.String())
}

func TestMachine_PendingAndReset(t *testing.T) {
	s, _, _ := newTestSession(t, newTestBoard(standardBoard()...))
	s.Click(ButtonPrimary, "ber")

	primary, secondary := s.Machine.Pending()
	require.Equal(t, Step{Kind: StepAwaitDestination, Origin: "ber"}, primary.Step)
	require.Equal(t, FilterProvince, primary.Filter)
	require.Equal(t, Step{Kind: StepAwaitSupportOrigin, Origin: "ber"}, secondary.Step)
	require.False(t, s.Machine.Idle())

	s.Machine.Reset()
	primary, secondary = s.Machine.Pending()
	require.Equal(t, defaultPrimary, primary)
	require.Equal(t, defaultSecondary, secondary)
}
