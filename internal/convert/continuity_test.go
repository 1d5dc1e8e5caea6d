package convert

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"tripcal/internal/model"
)

func TestStayIsFinalLeg(t *testing.T) {
	first := checkInItem("resort-1", "2024-03-01", "2024-03-05", "Pine Key Lodge")
	second := checkInItem("resort-2", "2024-03-05", "2024-03-08", "Bay Cove Resort")

	t.Run("no continuing reservation", func(t *testing.T) {
		days := []model.Day{
			{Date: "2024-03-01", Plans: []model.PlanItem{first}},
			{Date: "2024-03-05"},
		}
		assert.True(t, stayIsFinalLeg(first, days))
	})

	t.Run("check-in on checkout day continues the stay", func(t *testing.T) {
		days := []model.Day{
			{Date: "2024-03-01", Plans: []model.PlanItem{first}},
			{Date: "2024-03-05", Plans: []model.PlanItem{second}},
		}
		assert.False(t, stayIsFinalLeg(first, days))
		assert.True(t, stayIsFinalLeg(second, days), "the continuing stay itself is final")
	})

	t.Run("checkout record on checkout day does not continue the stay", func(t *testing.T) {
		checkout := model.PlanItem{
			ID:        "resort-1-out",
			Type:      model.TypeResort,
			SubType:   mo.Some(model.SubTypeRoomCheckOut),
			StartDate: "2024-03-05",
			Title:     "Pine Key Lodge",
		}
		days := []model.Day{
			{Date: "2024-03-05", Plans: []model.PlanItem{checkout}},
		}
		assert.True(t, stayIsFinalLeg(first, days))
	})

	t.Run("checkout day missing from day list", func(t *testing.T) {
		days := []model.Day{{Date: "2024-03-01", Plans: []model.PlanItem{first}}}
		assert.True(t, stayIsFinalLeg(first, days))
	})

	t.Run("missing endDate", func(t *testing.T) {
		item := first
		item.EndDate = mo.None[string]()
		assert.True(t, stayIsFinalLeg(item, nil))
	})
}
