// Package shopping renders the ingredients needed for every recipe in a user's
// shopping cart as one plain-text list.
package shopping

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"droscher.com/Foodgram/pkg/model"
)

const (
	FileName    = "shopping_list.txt"
	ContentType = "text/plain; charset=utf-8"
)

var ErrNoUser = errors.New("no user")

type Store interface {
	GetCartIngredients(ctx context.Context, userID uint) ([]model.CartIngredient, error)
}

// Options controls the fixed lines of the report.
type Options struct {
	Header      string
	Placeholder string
}

func DefaultOptions() Options {
	return Options{
		Header:      ">>> SHOPPING LIST <<<",
		Placeholder: "Oops! Your shopping list is empty :(",
	}
}

// Item is the summed amount of one ingredient in one measurement unit.
type Item struct {
	Name            string
	MeasurementUnit string
	Amount          uint64
}

type Aggregator struct {
	store   Store
	options Options
	logger  *zap.Logger
}

func NewAggregator(store Store, options Options, logger *zap.Logger) *Aggregator {
	return &Aggregator{store: store, options: options, logger: logger}
}

// Items returns the user's cart ingredients summed per (name, unit) and
// ordered by name, then unit.
func (a *Aggregator) Items(ctx context.Context, user *model.User) ([]Item, error) {
	if user == nil {
		return nil, ErrNoUser
	}

	rows, err := a.store.GetCartIngredients(ctx, user.ID)
	if err != nil {
		a.logger.Error("error reading shopping cart", zap.Uint("user_id", user.ID), zap.Error(err))

		return nil, err
	}

	return Aggregate(rows), nil
}

// Report renders the user's shopping list.
func (a *Aggregator) Report(ctx context.Context, user *model.User) (string, error) {
	items, err := a.Items(ctx, user)
	if err != nil {
		return "", err
	}

	return a.options.Render(items), nil
}

func Aggregate(rows []model.CartIngredient) []Item {
	type key struct {
		name string
		unit string
	}

	sums := make(map[key]uint64, len(rows))
	for _, row := range rows {
		sums[key{name: row.Name, unit: row.MeasurementUnit}] += uint64(row.Amount)
	}

	items := make([]Item, 0, len(sums))
	for k, amount := range sums {
		items = append(items, Item{Name: k.name, MeasurementUnit: k.unit, Amount: amount})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}

		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})

	return items
}

// Render writes the header, a blank line and one numbered line per item, or
// the placeholder when there are no items.
func (o Options) Render(items []Item) string {
	var report strings.Builder

	report.WriteString(o.Header)
	report.WriteString("\n\n")

	if len(items) == 0 {
		report.WriteString(o.Placeholder)

		return report.String()
	}

	// a Caser keeps state, so every report gets its own
	title := cases.Title(language.Und)

	for index, item := range items {
		if index > 0 {
			report.WriteString("\n")
		}

		fmt.Fprintf(&report, "%d. %s - %d %s", index+1, title.String(item.Name), item.Amount, item.MeasurementUnit)
	}

	return report.String()
}
