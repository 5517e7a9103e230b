package fulfillment

import (
	"fmt"

	"pickup/internal/pkg/errs"
)

// Strategy names the shape of a fulfillment request. Strategies are ordered
// from the most explicit to the most minimal.
type Strategy int

const (
	StrategyNone Strategy = iota
	// StrategyExplicit sends the selected line items, the location, and notification.
	StrategyExplicit
	// StrategyWithoutLineItems lets upstream fulfill every eligible item at the location.
	StrategyWithoutLineItems
	// StrategyWithoutLocation also leaves the location to upstream.
	StrategyWithoutLocation
	// StrategyNotifyOnly sends only the customer-notification flag.
	StrategyNotifyOnly
)

// CascadeOrder is the fixed order in which strategies are attempted.
var CascadeOrder = []Strategy{
	StrategyExplicit,
	StrategyWithoutLineItems,
	StrategyWithoutLocation,
	StrategyNotifyOnly,
}

func getStrategyStrings() map[Strategy]string {
	return map[Strategy]string{
		StrategyNone:             "none",
		StrategyExplicit:         "explicit",
		StrategyWithoutLineItems: "without_line_items",
		StrategyWithoutLocation:  "without_location",
		StrategyNotifyOnly:       "notify_only",
	}
}

func (s Strategy) String() string {
	if str, ok := getStrategyStrings()[s]; ok {
		return str
	}
	return "none"
}

func ParseStrategy(raw string) (Strategy, error) {
	for strategy, str := range getStrategyStrings() {
		if str == raw {
			return strategy, nil
		}
	}
	return StrategyNone, errs.NewValueIsInvalidErrorWithCause("strategy is invalid", fmt.Errorf("%q is not a valid strategy", raw))
}

// Validate accepts StrategyNone too: journal entries for flows that never
// reached the fulfillment endpoint carry it.
func (s Strategy) Validate() error {
	if _, ok := getStrategyStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("strategy is invalid", fmt.Errorf("%d is not a valid strategy", s))
	}
	return nil
}
