package blueprint

import "fmt"

// Strategy is one recommended marketing play with concrete steps.
type Strategy struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// SuccessStory is one client testimonial shown in the report.
type SuccessStory struct {
	Business  string `json:"business"`
	Quote     string `json:"quote"`
	Result    string `json:"result"`
	Timeframe string `json:"timeframe"`
}

// VerticalContent is the narrative content for one vertical. All verticals
// share one data-driven table consumed generically by the builder, so
// adding a vertical is a data change only.
type VerticalContent struct {
	Title      string
	Summary    string
	Strategies []Strategy
	Stories    []SuccessStory
}

// MonthPlan is one month of the onboarding checklist. The plan is identical
// across all verticals.
type MonthPlan struct {
	Month string
	Tasks []string
}

const (
	genericTitle   = "Growth Blueprint"
	genericSummary = "This blueprint lays out a proven digital marketing system for local service businesses: capture high-intent searches, convert more of the leads you already get, and reinvest the gains into channels with measurable return. The projections inside are based on benchmarks from hundreds of local service campaigns."

	contactPhone = "(800) 555-0199"
	contactEmail = "growth@rankforge.example"
	contactSite  = "rankforge.example"
)

// ImplementationPlan is the fixed four-month onboarding checklist.
var ImplementationPlan = []MonthPlan{
	{Month: "Month 1: Foundation", Tasks: []string{
		"Audit your website, Google Business Profile, and current tracking",
		"Install call tracking and lead attribution",
		"Launch your first local search campaign",
		"Set baseline metrics for leads, cost per lead, and booking rate",
	}},
	{Month: "Month 2: Optimization", Tasks: []string{
		"Cut underperforming keywords and reallocate budget",
		"A/B test landing pages against your two best offers",
		"Launch review-generation outreach to past customers",
		"Tighten speed-to-lead: respond to every inquiry within 5 minutes",
	}},
	{Month: "Month 3: Expansion", Tasks: []string{
		"Add retargeting for visitors who didn't convert",
		"Expand service-area pages for neighboring territories",
		"Launch a referral offer for existing customers",
		"Review month-over-month ROAS and rebalance spend",
	}},
	{Month: "Month 4: Scale", Tasks: []string{
		"Increase budget on campaigns beating target cost per lead",
		"Add a second channel (LSA, Meta, or direct mail) to the mix",
		"Systematize reporting: one weekly scorecard, one monthly review",
		"Lock in the next quarter's growth targets",
	}},
}

var verticalContent = map[string]VerticalContent{
	"cleaning-service": {
		Title:   "Cleaning Service Growth Blueprint",
		Summary: "Cleaning companies win or lose on repeat business. The math below assumes what we see across cleaning clients: recurring contracts lift lifetime value far above the first job, so every new lead is worth multiples of its first invoice. This blueprint focuses on filling your schedule with recurring residential and commercial accounts, not one-off deep cleans.",
		Strategies: []Strategy{
			{
				Title:       "Own \"house cleaning near me\"",
				Description: "Most cleaning searches are local and urgent. Ranking in the map pack for your service area is the single highest-leverage move.",
				Steps: []string{
					"Rebuild your Google Business Profile with service categories, photos, and weekly posts",
					"Collect 10+ new reviews per month with an automated post-job text",
					"Build a dedicated page per city and per service (recurring, move-out, commercial)",
				},
			},
			{
				Title:       "Recurring-first offers",
				Description: "Sell the subscription, not the visit. A first-clean discount tied to a recurring plan converts one-time shoppers into contracts.",
				Steps: []string{
					"Lead with a bundled first-clean offer that requires a recurring plan",
					"Quote recurring pricing on the first call, not as an afterthought",
					"Follow up every one-time customer within 7 days with a recurring upgrade offer",
				},
			},
			{
				Title:       "Commercial account outreach",
				Description: "A handful of offices or medical suites can anchor your monthly revenue. Commercial contracts smooth out residential seasonality.",
				Steps: []string{
					"Build a list of 100 local offices, clinics, and gyms",
					"Run a 3-touch sequence: drop-off packet, call, email with a walkthrough offer",
					"Price walkthroughs same-week while interest is warm",
				},
			},
		},
		Stories: []SuccessStory{
			{Business: "Sparkle & Shine Cleaning", Quote: "We went from chasing one-off jobs to a waitlist of recurring clients. The map pack work alone changed our business.", Result: "3.2x more recurring contracts", Timeframe: "6 months"},
			{Business: "Evergreen Home Cleaning", Quote: "The recurring-first offer was the unlock. Same ad spend, completely different customer quality.", Result: "$18k added monthly recurring revenue", Timeframe: "4 months"},
		},
	},
	"hvac": {
		Title:   "HVAC Growth Blueprint",
		Summary: "HVAC demand spikes with the weather, and the companies that win are the ones already ranked when the heat wave hits. High ticket values mean even a modest lift in booked calls moves revenue dramatically. This blueprint pairs emergency-intent search capture with maintenance-plan marketing that smooths the shoulder seasons.",
		Strategies: []Strategy{
			{
				Title:       "Capture emergency intent",
				Description: "\"AC repair near me\" at 9pm in July is the most valuable click in home services. Be present, be fast, answer the phone.",
				Steps: []string{
					"Run Local Services Ads alongside search campaigns for repair keywords",
					"Route after-hours calls to an answering service that books, not just takes messages",
					"Track cost per booked call, not cost per click",
				},
			},
			{
				Title:       "Maintenance plan engine",
				Description: "Tune-up memberships turn seasonal customers into year-round revenue and give your techs a replacement pipeline.",
				Steps: []string{
					"Offer the maintenance plan on every completed service call",
					"Run spring and fall tune-up campaigns to your customer list",
					"Script the replacement conversation for aging systems found during tune-ups",
				},
			},
			{
				Title:       "Financing-forward replacement offers",
				Description: "System replacements stall on sticker shock. Leading with a monthly payment doubles quote acceptance on big tickets.",
				Steps: []string{
					"Put \"as low as $X/month\" on every replacement landing page",
					"Train comfort advisors to present three options with monthly pricing",
					"Retarget quote non-closers with a financing-focused follow-up sequence",
				},
			},
		},
		Stories: []SuccessStory{
			{Business: "Summit Air & Heat", Quote: "Booked calls doubled the first summer. The LSA plus search combination put us everywhere our competitors weren't.", Result: "2.1x booked service calls", Timeframe: "One season"},
			{Business: "Comfort Pro Mechanical", Quote: "Four hundred maintenance members later, winter isn't scary anymore.", Result: "400+ maintenance plan members", Timeframe: "12 months"},
			{Business: "Blue Flame Heating", Quote: "Financing-first quotes changed our close rate overnight.", Result: "38% lift in replacement close rate", Timeframe: "90 days"},
		},
	},
	"plumbing": {
		Title:   "Plumbing Growth Blueprint",
		Summary: "Plumbing leads are urgent, local, and expensive to buy badly. The winners keep cost per booked job down by owning organic map results while using paid search surgically for emergency keywords. This blueprint builds that mix and adds a repeat-business layer most plumbers never install.",
		Strategies: []Strategy{
			{
				Title:       "Emergency search domination",
				Description: "Burst pipes don't comparison shop. The first plumber who answers gets the job, so pair top-of-page presence with instant response.",
				Steps: []string{
					"Split campaigns by intent: emergency, install, and remodel keywords priced separately",
					"Answer 100% of calls live; missed calls get an automatic text-back within 60 seconds",
					"Show real response times and review counts on every landing page",
				},
			},
			{
				Title:       "Water heater and repipe funnels",
				Description: "Planned work has longer consideration windows. Dedicated funnels with upfront pricing win the research-phase customer.",
				Steps: []string{
					"Build standalone pages with ballpark pricing for water heaters and repipes",
					"Offer a free camera inspection or estimate as the conversion step",
					"Nurture non-bookers with an email sequence on warning signs and costs",
				},
			},
			{
				Title:       "Membership and inspection recalls",
				Description: "An annual inspection membership keeps your name on the water heater and your number in their phone.",
				Steps: []string{
					"Attach a membership pitch to every completed job over $500",
					"Schedule next year's inspection before the tech leaves",
					"Run recall campaigns to customers with aging water heaters on file",
				},
			},
		},
		Stories: []SuccessStory{
			{Business: "Rapid Rooter Plumbing", Quote: "The text-back system alone recovered jobs we didn't know we were losing.", Result: "31% more booked emergency jobs", Timeframe: "60 days"},
			{Business: "Harbor City Plumbing", Quote: "Upfront pricing pages brought us a different kind of customer. Bigger jobs, fewer price shoppers.", Result: "2.4x average ticket on planned work", Timeframe: "5 months"},
		},
	},
	"electrical": {
		Title:   "Electrical Contractor Growth Blueprint",
		Summary: "Electrical work splits into urgent repairs and planned projects, and each needs its own marketing motion. Panel upgrades, EV chargers, and generator installs are growing categories with high tickets and little competition in most metros. This blueprint captures both sides while building the review moat that wins risk-averse homeowners.",
		Strategies: []Strategy{
			{
				Title:       "Project-intent search capture",
				Description: "EV charger and panel upgrade searches signal a funded project. These keywords are cheaper than emergency terms and convert to bigger jobs.",
				Steps: []string{
					"Launch dedicated campaigns for EV charger, panel upgrade, and generator keywords",
					"Build a landing page per project type with ballpark pricing and timeline",
					"Offer a fixed-price video estimate to lower the first-step friction",
				},
			},
			{
				Title:       "Trust signals everywhere",
				Description: "Homeowners fear electrical work going wrong. Licenses, insurance, and reviews displayed aggressively convert the cautious majority.",
				Steps: []string{
					"Put license numbers, insurance, and guarantee language above the fold",
					"Automate review requests the evening after every completed job",
					"Publish before/after photos of panel and lighting work weekly",
				},
			},
			{
				Title:       "Builder and remodeler partnerships",
				Description: "A few steady general contractor relationships can fill your calendar between retail jobs.",
				Steps: []string{
					"Identify 50 active remodelers and GCs in your service area",
					"Offer priority scheduling and standardized pricing for trade partners",
					"Check in monthly with capacity updates so you're the first call",
				},
			},
		},
		Stories: []SuccessStory{
			{Business: "Current Electric Co.", Quote: "EV charger installs went from a sideline to a third of our revenue.", Result: "3x EV charger install volume", Timeframe: "8 months"},
			{Business: "Beacon Electrical", Quote: "The review engine runs itself now. We win jobs before we ever quote them.", Result: "250+ new five-star reviews", Timeframe: "12 months"},
		},
	},
	"landscaping": {
		Title:   "Landscaping Growth Blueprint",
		Summary: "Landscaping is seasonal, visual, and referral-driven, which makes it ideal for a marketing system most competitors don't bother to build. Recurring maintenance contracts are the prize: they turn a spring rush into year-round revenue. This blueprint combines visual social proof with contract-first offers.",
		Strategies: []Strategy{
			{
				Title:       "Before/after content engine",
				Description: "Transformations sell themselves. A steady stream of project photos feeds ads, social, and your website at zero media cost.",
				Steps: []string{
					"Have crews capture before/after photos on every job with a simple phone workflow",
					"Post transformations weekly to Google Business Profile, Instagram, and Facebook",
					"Turn the best projects into neighborhood-targeted ads",
				},
			},
			{
				Title:       "Maintenance contract push",
				Description: "One-time cleanups become season-long contracts when the upgrade is offered at the moment of delight.",
				Steps: []string{
					"Quote seasonal contracts alongside every one-time job",
					"Offer first-month incentives for annual maintenance signups",
					"Renew contracts in January with early-bird pricing before competitors wake up",
				},
			},
			{
				Title:       "Neighborhood clustering",
				Description: "Ten yards on one street beat ten yards across town. Density cuts drive time and turns every job site into a billboard.",
				Steps: []string{
					"Drop five-door flyers around every active job",
					"Offer same-street discounts to fill route density",
					"Target ads by subdivision, not by radius",
				},
			},
		},
		Stories: []SuccessStory{
			{Business: "GreenScape Pros", Quote: "We stopped chasing spring cleanups and started selling seasons. Contract revenue carried us through winter for the first time.", Result: "70% of revenue now recurring", Timeframe: "2 seasons"},
			{Business: "TerraFirma Landscapes", Quote: "The before/after ads outperform everything else we've ever run.", Result: "4.1x return on ad spend", Timeframe: "6 months"},
		},
	},
	"roofing": {
		Title:   "Roofing Growth Blueprint",
		Summary: "Roofing tickets are the largest in home services, which means the lead math is unforgiving in both directions: expensive clicks, but a single closed job pays for a month of marketing. This blueprint is built around inspection-first offers that lower the homeowner's commitment threshold, plus storm-response readiness for when demand surges.",
		Strategies: []Strategy{
			{
				Title:       "Inspection-first funnel",
				Description: "\"Free roof inspection\" out-converts \"free estimate\" because it promises information, not a sales pitch.",
				Steps: []string{
					"Lead every campaign with a free inspection plus photo report",
					"Deliver a same-day digital report with annotated photos",
					"Present repair and replacement paths with financing on both",
				},
			},
			{
				Title:       "Storm response playbook",
				Description: "After a hail or wind event, the first crew door-knocking with an insurance-savvy pitch books the neighborhood.",
				Steps: []string{
					"Pre-build storm landing pages and ad campaigns ready to launch within hours",
					"Train canvassers on insurance claim basics and documentation",
					"Map affected zip codes and concentrate all spend there for 72 hours",
				},
			},
			{
				Title:       "Insurance claim expertise positioning",
				Description: "Homeowners don't know the claims process; the contractor who guides them wins the job without competing on price.",
				Steps: []string{
					"Publish a plain-language claims guide and gate it behind an email form",
					"Offer free claim-document review as a mid-funnel step",
					"Collect testimonials that specifically mention claims help",
				},
			},
		},
		Stories: []SuccessStory{
			{Business: "Apex Roofing Systems", Quote: "The inspection report changed everything. Homeowners trust us before we ever talk price.", Result: "52% inspection-to-contract rate", Timeframe: "90 days"},
			{Business: "Guardian Roof Co.", Quote: "We booked 90 inspections in the week after the June storm because everything was ready to launch.", Result: "$740k in storm contracts", Timeframe: "3 weeks"},
		},
	},
	"home-service": {
		Title:   "Home Service Growth Blueprint",
		Summary: "Multi-trade home service companies have an advantage single-trade shops can't match: every completed job is a warm lead for another service line. The catch is marketing each line well without splitting your budget into irrelevance. This blueprint builds one lead system that feeds every trade you run.",
		Strategies: []Strategy{
			{
				Title:       "One brand, per-service funnels",
				Description: "Customers search for the problem, not your company. Each service line needs its own landing path under one trusted brand.",
				Steps: []string{
					"Build a dedicated landing page and campaign per service line",
					"Keep branding, reviews, and guarantees consistent across all of them",
					"Measure each line's cost per booked job separately",
				},
			},
			{
				Title:       "Cross-sell at the kitchen table",
				Description: "The cheapest lead you'll ever get is the customer your tech is already standing in front of.",
				Steps: []string{
					"Add a 10-point whole-home check to every service visit",
					"Equip techs with instant quotes for adjacent services",
					"Follow every job with a tailored offer for the next most likely need",
				},
			},
			{
				Title:       "Customer list reactivation",
				Description: "Your past-customer list outperforms any cold audience. Most home service companies never mail it.",
				Steps: []string{
					"Segment past customers by service history and home age",
					"Run seasonal maintenance reminders by email and text",
					"Offer a loyalty discount that requires booking two service lines",
				},
			},
		},
		Stories: []SuccessStory{
			{Business: "HomeRight Services", Quote: "Cross-sell revenue now rivals our inbound leads, and it costs us nothing to generate.", Result: "28% of revenue from cross-sells", Timeframe: "9 months"},
			{Business: "TruNorth Home Services", Quote: "Separating the funnels showed us two service lines were carrying the other three. We fixed the spend in a month.", Result: "Cost per booked job down 41%", Timeframe: "60 days"},
		},
	},
}

// ContentForVertical returns the narrative content for a vertical id.
// Unknown ids get the generic title and summary with empty strategy and
// story lists; the report still renders every section.
func ContentForVertical(id string) VerticalContent {
	if c, ok := verticalContent[id]; ok {
		return c
	}
	return VerticalContent{
		Title:      genericTitle,
		Summary:    genericSummary,
		Strategies: []Strategy{},
		Stories:    []SuccessStory{},
	}
}

// ctaText is the closing copy. The vertical id is interpolated into the
// templated paragraph the landing pages have always used.
func ctaText(vertical string) string {
	return fmt.Sprintf(
		"You've seen the numbers. The %s businesses we work with follow this exact playbook, and the difference between reading it and running it is usually one decision. Book a free strategy call and we'll walk through how these projections apply to your market, your budget, and your next 90 days.",
		vertical,
	)
}
