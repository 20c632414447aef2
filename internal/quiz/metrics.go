package quiz

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSelected  = "selected"
	outcomeExhausted = "exhausted"
)

var selections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trivia",
	Subsystem: "quiz",
	Name:      "selections_total",
	Help:      "Quiz question draws by outcome.",
}, []string{"outcome"})
