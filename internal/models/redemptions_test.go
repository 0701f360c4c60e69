package models

import "testing"

func TestNextStatusOnClaim(t *testing.T) {
	testCases := []struct {
		Name             string
		RewardType       string
		ExpectedStatus   string
		ExpectedTerminal bool
	}{
		{Name: "Gift goes straight to used #1", RewardType: RewardTypeGift, ExpectedStatus: RedemptionStatusUsed, ExpectedTerminal: true},
		{Name: "Voucher waits for invoice #2", RewardType: RewardTypeVoucher, ExpectedStatus: RedemptionStatusClaimed, ExpectedTerminal: false},
		{Name: "Discount waits for invoice #3", RewardType: RewardTypeDiscount, ExpectedStatus: RedemptionStatusClaimed, ExpectedTerminal: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			status, terminal := NextStatusOnClaim(tc.RewardType)
			if status != tc.ExpectedStatus {
				t.Errorf("Expected status '%s', got: '%s'", tc.ExpectedStatus, status)
			}
			if terminal != tc.ExpectedTerminal {
				t.Errorf("Expected terminal '%v', got: '%v'", tc.ExpectedTerminal, terminal)
			}
		})
	}
}

func TestValidRedemptionStatus(t *testing.T) {
	testCases := []struct {
		Name     string
		Status   string
		Expected bool
	}{
		{Name: "Pending is valid #1", Status: RedemptionStatusPending, Expected: true},
		{Name: "Claimed is valid #2", Status: RedemptionStatusClaimed, Expected: true},
		{Name: "Used is valid #3", Status: RedemptionStatusUsed, Expected: true},
		{Name: "Unknown is invalid #4", Status: "DELETED", Expected: false},
		{Name: "Empty is invalid #5", Status: "", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := ValidRedemptionStatus(tc.Status); got != tc.Expected {
				t.Errorf("Expected '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}
