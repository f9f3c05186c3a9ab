package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

func TestDefaultEdge_Accessors(t *testing.T) {
	e := core.NewDefaultEdge(2, 5, magnitude.Finite(1.5))
	require.Equal(t, 2, e.SrcID())
	require.Equal(t, 5, e.DstID())
	require.Equal(t, magnitude.Finite(1.5), e.Weight())

	e.SetWeight(magnitude.PosInf[float64]())
	require.True(t, e.Weight().IsPosInf())

	e.SetID(9)
	require.Equal(t, 9, e.ID())
}

func TestFlowEdge_DefaultsToZeroCapacityAndFlow(t *testing.T) {
	e := core.NewFlowEdge(0, 1, magnitude.Finite(1))
	require.Equal(t, 0, e.Capacity())
	require.Equal(t, 0, e.Flow())
	require.Equal(t, 0, e.Residual())
}

func TestFlowEdge_ConstructionRejectsFlowAboveCapacity(t *testing.T) {
	_, err := core.NewFlowEdgeWith(0, 1, magnitude.Finite(1), 3, 4)
	require.ErrorIs(t, err, core.ErrFlowExceedsCapacity)
	require.Contains(t, err.Error(), "4 > 3", "error should carry the offending values")
}

func TestFlowEdge_ConstructionRejectsNegativeCapacity(t *testing.T) {
	_, err := core.NewFlowEdgeWith(0, 1, magnitude.Finite(1), -1, 0)
	require.ErrorIs(t, err, core.ErrNegativeCapacity)
}

func TestFlowEdge_MustVariant(t *testing.T) {
	e := core.MustFlowEdgeWith(0, 1, magnitude.Finite(1), 5, 2)
	require.Equal(t, 3, e.Residual())
	require.Panics(t, func() { core.MustFlowEdgeWith(0, 1, magnitude.Finite(1), 3, 4) })
}

func TestFlowEdge_SetFlowKeepsInvariant(t *testing.T) {
	e := core.MustFlowEdgeWith(0, 1, magnitude.Finite(1), 3, 1)

	require.NoError(t, e.SetFlow(3))
	require.Equal(t, 0, e.Residual())

	// A violating update is rejected and leaves the edge unchanged.
	require.ErrorIs(t, e.SetFlow(4), core.ErrFlowExceedsCapacity)
	require.Equal(t, 3, e.Flow())

	// Negative flow is legal; residual grows accordingly.
	require.NoError(t, e.SetFlow(-2))
	require.Equal(t, 5, e.Residual())
}

func TestFlowEdge_SetCapacityKeepsInvariant(t *testing.T) {
	e := core.MustFlowEdgeWith(0, 1, magnitude.Finite(1), 5, 4)

	require.ErrorIs(t, e.SetCapacity(3), core.ErrCapacityBelowFlow)
	require.Equal(t, 5, e.Capacity())

	require.ErrorIs(t, e.SetCapacity(-1), core.ErrNegativeCapacity)

	require.NoError(t, e.SetCapacity(4))
	require.Equal(t, 0, e.Residual())
}
