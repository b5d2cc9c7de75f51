package extract

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jtoivan/statnews/internal/data"
	"github.com/jtoivan/statnews/internal/model"
)

// MessageGenerator converts dataset rows into candidate messages. The core
// pool holds facts about the queried location; the expanded pool holds facts
// about every other location, available to the planner as satellites only.
type MessageGenerator struct {
	expand bool
	now    time.Time
}

// NewMessageGenerator creates a generator. With expand set, rows outside the
// queried location feed the expanded pool.
func NewMessageGenerator(expand bool) *MessageGenerator {
	return &MessageGenerator{expand: expand, now: time.Now()}
}

// WithNow fixes the reference time used by the recency filters. Used by
// tests that need stable output.
func (g *MessageGenerator) WithNow(now time.Time) *MessageGenerator {
	g.now = now
	return g
}

// Generate extracts core and expanded messages for a location query.
// The query value "all" selects every row into the core pool. Returns
// model.ErrNoMessages if no core messages could be extracted.
func (g *MessageGenerator) Generate(store data.Store, location, locationType string) (core, expanded []*model.Message, err error) {
	var coreRows, expandedRows []data.Row
	if location == "all" {
		coreRows = store.All()
	} else {
		coreRows = store.Query(func(r data.Row) bool { return r.Location == location })
		if g.expand {
			expandedRows = store.Query(func(r data.Row) bool { return r.Location != location })
		}
	}

	for _, row := range coreRows {
		core = append(core, g.rowMessages(row)...)
	}
	for _, row := range expandedRows {
		expanded = append(expanded, g.rowMessages(row)...)
	}

	if len(core) == 0 {
		return nil, nil, fmt.Errorf("location %s (%s): %w", location, locationType, model.ErrNoMessages)
	}
	return core, expanded, nil
}

// rowMessages builds one message per usable value column of a row.
func (g *MessageGenerator) rowMessages(row data.Row) []*model.Message {
	if !g.recentEnough(row.Timestamp, row.TimestampType) {
		return nil
	}

	// Column order must be stable: score ties keep their extraction order
	// through the stable sort, and pool order feeds nucleus choice and
	// template filling, so map iteration would break seeded determinism.
	columns := make([]string, 0, len(row.Values))
	for col := range row.Values {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	var messages []*model.Message
	for _, col := range columns {
		value := row.Values[col]
		if math.IsNaN(value) {
			// Effectively undefined, nothing to say about it.
			continue
		}
		outlierness, _ := row.OutliernessFor(col)

		fact := model.Fact{
			Location:      fmt.Sprintf("[ENTITY:%s:%s]", row.LocationType, row.Location),
			LocationType:  row.LocationType,
			Value:         value,
			ValueType:     col,
			Agent:         row.Agent,
			AgentType:     row.AgentType,
			Timestamp:     row.Timestamp,
			TimestampType: row.TimestampType,
			Outlierness:   outlierness,
		}
		messages = append(messages, model.NewMessage(fact))
	}
	return messages
}

// recentEnough keeps monthly figures for this and the previous year, and
// yearly figures for the last three years. Older data is stale news.
func (g *MessageGenerator) recentEnough(timestamp, timestampType string) bool {
	switch timestampType {
	case "month":
		parts := strings.SplitN(timestamp, "M", 2)
		if len(parts) != 2 {
			return false
		}
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return false
		}
		return year >= g.now.Year()-1
	case "year":
		year, err := strconv.Atoi(timestamp)
		if err != nil {
			return false
		}
		return year >= g.now.Year()-3
	}
	return true
}
