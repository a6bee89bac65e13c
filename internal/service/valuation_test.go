package service

import (
	"testing"

	"tpfx-journal/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCurrentBalance(t *testing.T) {
	tests := []struct {
		name          string
		balance       float64
		monthlyNetPnL float64
		want          float64
	}{
		{
			name:          "losing month reduces the balance",
			balance:       20000,
			monthlyNetPnL: -500,
			want:          19500,
		},
		{
			name:          "winning month adds to the balance",
			balance:       20000,
			monthlyNetPnL: 1250.50,
			want:          21250.50,
		},
		{
			name:          "flat month leaves the balance unchanged",
			balance:       20000,
			monthlyNetPnL: 0,
			want:          20000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := model.Account{Name: "FundedNext", Balance: tt.balance, Currency: "USD"}
			assert.Equal(t, tt.want, CurrentBalance(account, tt.monthlyNetPnL))
		})
	}
}
