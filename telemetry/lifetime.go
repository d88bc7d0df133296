package telemetry

import (
	"log/slog"

	"github.com/Vovchek-aks/SnakesEvolv/components"
	"github.com/Vovchek-aks/SnakesEvolv/systems"
)

// DeathRecord is one row of deaths.csv.
type DeathRecord struct {
	Tick       int32  `csv:"tick"`
	ID         uint32 `csv:"id"`
	ParentID   uint32 `csv:"parent_id"`
	Generation int    `csv:"generation"`
	BirthTick  int32  `csv:"birth_tick"`
	Length     int    `csv:"length"`
	LifeSteps  int    `csv:"life_steps"`
	Cause      string `csv:"cause"`
	NewBest    bool   `csv:"new_best"`
}

// NewDeathRecord builds a record from a dead snake's components.
func NewDeathRecord(tick int32, lin *components.Lineage, vitals *components.Vitals, length int, cause systems.DeathCause) DeathRecord {
	return DeathRecord{
		Tick:       tick,
		ID:         lin.ID,
		ParentID:   lin.ParentID,
		Generation: lin.Generation,
		BirthTick:  lin.BirthTick,
		Length:     length,
		LifeSteps:  vitals.LifeSteps,
		Cause:      cause.String(),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (d DeathRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", int(d.Tick)),
		slog.Any("id", d.ID),
		slog.Any("parent_id", d.ParentID),
		slog.Int("generation", d.Generation),
		slog.Int("length", d.Length),
		slog.Int("life_steps", d.LifeSteps),
		slog.String("cause", d.Cause),
	)
}
