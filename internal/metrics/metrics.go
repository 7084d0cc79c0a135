package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Bank Metrics
var (
	BanksCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBanksCreated,
			Help: HelpTextBanksCreated,
		},
		[]string{LabelDefinition},
	)

	BanksRespawned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBanksRespawned,
			Help: HelpTextBanksRespawned,
		},
		[]string{LabelDefinition},
	)

	BanksDepleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBanksDepleted,
			Help: HelpTextBanksDepleted,
		},
		[]string{LabelDefinition},
	)

	BanksActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameBanksActive,
			Help: HelpTextBanksActive,
		},
		[]string{LabelDefinition},
	)
)

// Harvest Metrics
var (
	HarvestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestsCompleted,
			Help: HelpTextHarvestsCompleted,
		},
		[]string{LabelDefinition, LabelItemType},
	)

	HarvestedAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestedAmount,
			Help: HelpTextHarvestedAmount,
		},
		[]string{LabelDefinition},
	)

	HarvestsRefused = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestsRefused,
			Help: HelpTextHarvestsRefused,
		},
		[]string{LabelSystem, LabelReason},
	)

	BonusesAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBonusesAwarded,
			Help: HelpTextBonusesAwarded,
		},
		[]string{LabelDefinition, LabelItemType},
	)

	ToolsBroken = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameToolsBroken,
			Help: HelpTextToolsBroken,
		},
	)
)

// harvestFamilies names every family this package registers
var harvestFamilies = map[string]struct{}{
	MetricNameEventsPublished:    {},
	MetricNameEventHandlerErrors: {},
	MetricNameBanksCreated:       {},
	MetricNameBanksRespawned:     {},
	MetricNameBanksDepleted:      {},
	MetricNameBanksActive:        {},
	MetricNameHarvestsCompleted:  {},
	MetricNameHarvestedAmount:    {},
	MetricNameHarvestsRefused:    {},
	MetricNameToolsBroken:        {},
	MetricNameBonusesAwarded:     {},
}
