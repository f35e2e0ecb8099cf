package flow

import (
	"regexp"

	"blip/internal/domain/entity"
)

var xHandlePattern = regexp.MustCompile(`^@?[A-Za-z0-9_]{1,15}$`)

func confirmStep() *Step {
	return &Step{
		Name:    "confirm",
		Prompt:  "Please review your answers.",
		Confirm: true,
		Options: []Option{{Value: SubmitValue, Label: "Submit"}},
	}
}

// Merchant is the merchant onboarding application.
func Merchant() *Flow {
	return MustNew(entity.FlowMerchant, "Merchant onboarding",
		"Thanks! Your application was submitted for review.",
		&Step{
			Name: "business_type", Label: "Business type", Prompt: "What kind of business do you run?",
			Options: []Option{
				{Value: "retail", Label: "Retail"},
				{Value: "ecommerce", Label: "E-commerce"},
				{Value: "services", Label: "Services"},
				{Value: "marketplace", Label: "Marketplace"},
			},
		},
		&Step{
			Name: entity.ProfileMonthlyVolume, Label: "Monthly volume", Prompt: "What is your monthly processing volume?",
			Options: []Option{
				{Value: string(entity.VolumeUnder10K), Label: "Under $10k"},
				{Value: string(entity.Volume10KTo100K), Label: "$10k – $100k"},
				{Value: string(entity.Volume100KTo1M), Label: "$100k – $1M"},
				{Value: string(entity.VolumeOver1M), Label: "Over $1M"},
			},
		},
		&Step{
			Name: "region", Label: "Region", Prompt: "Where are most of your customers?",
			Options: []Option{
				{Value: "na", Label: "North America"},
				{Value: "latam", Label: "Latin America"},
				{Value: "emea", Label: "Europe / Middle East / Africa"},
				{Value: "apac", Label: "Asia Pacific"},
			},
		},
		&Step{
			Name: "settlement", Label: "Settlement", Prompt: "How do you want to be settled?",
			Options: []Option{
				{Value: "fiat", Label: "Fiat"},
				{Value: "crypto", Label: "Crypto"},
				{Value: "mixed", Label: "Mixed"},
			},
		},
		&Step{
			Name: "integration", Label: "Integration", Prompt: "How will you integrate?",
			Options: []Option{
				{Value: "api", Label: "Direct API"},
				{Value: "plugin", Label: "Store plugin"},
				{Value: "hosted", Label: "Hosted checkout"},
			},
		},
		&Step{
			Name: "team_size", Label: "Team size", Prompt: "How big is your team?",
			Options: []Option{
				{Value: "solo", Label: "Just me"},
				{Value: "small", Label: "2–10"},
				{Value: "mid", Label: "11–50"},
				{Value: "large", Label: "50+"},
			},
		},
		&Step{
			Name: "timeline", Label: "Timeline", Prompt: "When do you plan to go live?",
			Options: []Option{
				{Value: "now", Label: "Right away"},
				{Value: "month", Label: "Within a month"},
				{Value: "quarter", Label: "This quarter"},
				{Value: "exploring", Label: "Just exploring"},
			},
		},
		&Step{
			Name: "source", Label: "Source", Prompt: "How did you hear about us?",
			Options: []Option{
				{Value: "referral", Label: "Referral"},
				{Value: "social", Label: "Social media"},
				{Value: "search", Label: "Search"},
				{Value: "event", Label: "Event"},
			},
		},
		confirmStep(),
	)
}

// Airdrop is the user registration for the points programme.
func Airdrop() *Flow {
	return MustNew(entity.FlowAirdrop, "Airdrop registration",
		"You're registered! Use /points to see your balance and referral code.",
		&Step{
			Name: "has_wallet", Label: "Wallet", Prompt: "Do you have an EVM wallet?",
			Options: []Option{
				{Value: "yes", Label: "Yes", Next: "wallet"},
				{Value: "no", Label: "Not yet", Next: "email"},
			},
		},
		&Step{
			Name: "wallet", Label: "Wallet address", Prompt: "Send your wallet address (0x…).",
			Rule: "eth_addr", Hint: "that does not look like a 0x wallet address",
		},
		&Step{
			Name: "email", Label: "Email", Prompt: "Send your email address.",
			Rule: "email", Hint: "that does not look like an email address",
		},
		&Step{
			Name: "x_handle", Label: "X handle", Prompt: "Send your X handle.",
			Pattern: xHandlePattern, Hint: "X handles are up to 15 letters, digits or underscores",
		},
		&Step{
			Name: "region", Label: "Region", Prompt: "Where are you based?",
			Options: []Option{
				{Value: "na", Label: "North America"},
				{Value: "latam", Label: "Latin America"},
				{Value: "emea", Label: "Europe / Middle East / Africa"},
				{Value: "apac", Label: "Asia Pacific"},
			},
		},
		confirmStep(),
	)
}

// DefaultRegistry holds both bot flows.
func DefaultRegistry() Registry {
	return Registry{
		entity.FlowMerchant: Merchant(),
		entity.FlowAirdrop:  Airdrop(),
	}
}
