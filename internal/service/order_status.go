package service

import (
	"strings"

	"github.com/dropmart/dropmart/internal/constants"
)

// allowedStatusTransitions 订单状态机：只进不退，终态不可变更
var allowedStatusTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusCanceled:   true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipped:  true,
		constants.OrderStatusCanceled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusCompleted: true,
	},
	constants.OrderStatusCompleted: {},
	constants.OrderStatusCanceled:  {},
}

func normalizeOrderStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func isValidOrderStatus(status string) bool {
	_, ok := allowedStatusTransitions[normalizeOrderStatus(status)]
	return ok
}

func isTransitionAllowed(current, target string) bool {
	targets, ok := allowedStatusTransitions[normalizeOrderStatus(current)]
	if !ok {
		return false
	}
	return targets[normalizeOrderStatus(target)]
}
