package fixtures

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// Vendors returns the sample vendors of every category. The venue
// category gets enough entries to spill over one listing page.
func Vendors() []*model.Vendor {
	seq = 0
	vendors := []*model.Vendor{
		venue("Rajwada Palace Gardens", "Mohit Choudhary", "Udaipur", "98,290", "palace", []string{"udaipur", "jaipur"}),
		venue("Lotus Banquets", "Shreya Kapoor", "Delhi NCR", "1,450", "banquet-hall", []string{"delhi"}),
		venue("Seaside Lawns", "Anthony D'Souza", "Goa", "2,100", "lawn", []string{"goa", "mumbai"}),
		venue("The Grand Meridian", "Vikram Batra", "Mumbai", "3,250", "hotel", []string{"mumbai"}),
		venue("Amber Greens Farmhouse", "Harleen Gill", "Delhi NCR", "1,800", "lawn", []string{"delhi", "jaipur"}),
		venue("Nizami Courtyard", "Faiz Ahmed", "Hyderabad", "1,650", "palace", []string{"hyderabad"}),
		venue("Cubbon Pavilion", "Ramesh Shetty", "Bengaluru", "2,400", "banquet-hall", []string{"bengaluru"}),
		venue("Pink City Haveli", "Aditi Rathore", "Jaipur", "2,950", "palace", []string{"jaipur", "udaipur"}),
		venue("Juhu Shores Resort", "Kunal Mehta", "Mumbai", "4,500", "hotel", []string{"mumbai", "goa"}),
		venue("Silver Oak Banquets", "Pooja Bansal", "Delhi NCR", "1,275", "banquet-hall", []string{"delhi"}),
		venue("Charminar Convention", "Srinivas Rao", "Hyderabad", "1,100", "banquet-hall", []string{"hyderabad"}),
		venue("Lakeview Terrace", "Devika Menon", "Udaipur", "3,800", "hotel", []string{"udaipur"}),

		jeweler("Tanvi Jewels", "Tanvi Agarwal", "Jaipur", []string{"kundan", "polki"}),
		jeweler("Swarna Mahal", "K. Subramaniam", "Hyderabad", []string{"temple", "gold"}),

		photographer("Candid Tales", "Arjun Nair", "Bengaluru", "85,000", []string{"candid", "cinematic"}),
		photographer("Shaadi Frames", "Neha Malhotra", "Delhi NCR", "1,20,000", []string{"traditional", "candid", "drone"}),

		makeupArtist("Blush by Riya", "Riya Sharma", "Mumbai", "45,000"),
		makeupArtist("Glam Studio", "Sana Qureshi", "Delhi NCR", "32,500"),

		eventPlanner("Saat Phere Events", "Manish Tiwari", "Jaipur", []string{"wedding", "sangeet", "destination"}),
		eventPlanner("Vows & Veils", "Elizabeth Thomas", "Goa", []string{"wedding", "reception"}),

		anchor("Anchor Aman", "Aman Khanna", "Delhi NCR", []string{"hindi", "english", "punjabi"}),
		anchor("MC Priya", "Priya Iyer", "Bengaluru", []string{"english", "tamil", "telugu"}),

		invitationShop("Kagaz Creations", "Rohit Jain", "Delhi NCR", "185"),
		invitationShop("The Card Boutique", "Meera Pillai", "Mumbai", "320"),

		caterer("Annapurna Caterers", "Suresh Gupta", "Delhi NCR", "950", []string{"north-indian", "chaat"}),
		caterer("Dakshin Flavours", "Lakshmi Narayan", "Bengaluru", "780", []string{"south-indian", "jain"}),
	}
	return vendors
}

// Load seeds every sample vendor into the repository. Existing records
// are left alone; each fixture is created with a fresh ID.
func Load(ctx context.Context, repo interfaces.Repository) error {
	vendors := Vendors()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	for _, v := range vendors {
		eg.Go(func() error {
			created, err := repo.Vendor().Create(ctx, v)
			if err != nil {
				return goerr.Wrap(err, "failed to seed vendor", goerr.V("name", v.Name))
			}
			logging.From(ctx).Debug("seeded vendor", "id", created.ID, "name", created.Name)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	logging.From(ctx).Info("seeded fixture vendors", "count", len(vendors))
	return nil
}

func phoneFor(seed int) string {
	return fmt.Sprintf("+91 98%03d %05d", seed%1000, (seed*7919)%100000)
}

func emailFor(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, name)
	return fmt.Sprintf("contact@%s.example.com", slug)
}

func base(category types.CategoryID, name, contact, location string, seed int) *model.Vendor {
	return &model.Vendor{
		Category: category,
		Name:     name,
		Contact:  contact,
		Location: location,
		Status:   types.VendorStatusActive,
		Fields: map[string]any{
			model.FieldName:          name,
			model.FieldContactPerson: contact,
			model.FieldPhone:         phoneFor(seed),
			model.FieldEmail:         emailFor(name),
			model.FieldDescription:   fmt.Sprintf("%s, based in %s.", name, location),
		},
		Selections: map[string][]string{},
		Groups:     map[string][]model.GroupRecordData{},
		Media:      map[string][]model.MediaObject{},
	}
}

var seq int

func next() int {
	seq++
	return seq
}

func venue(name, contact, location, pricePerPlate, venueType string, locations []string) *model.Vendor {
	v := base("venue", name, contact, location, next())
	v.Fields["price-per-plate"] = pricePerPlate
	v.Selections["venue-type"] = []string{venueType}
	v.Fields["capacity"] = float64(200 + seq*25)
	v.Fields["in-house-catering"] = seq%2 == 0
	v.Selections[model.SelectionLocations] = locations
	v.Groups["halls"] = []model.GroupRecordData{
		{Fields: map[string]string{"hall-name": "Main Hall", "seating-capacity": "300"}},
	}
	return v
}

func jeweler(name, contact, location string, specialities []string) *model.Vendor {
	v := base("jeweler", name, contact, location, next())
	v.Fields["starting-price"] = "25,000"
	v.Selections["specialities"] = specialities
	v.Groups["collections"] = []model.GroupRecordData{
		{Fields: map[string]string{"collection-name": "Bridal", "price-range": "50,000+"}},
	}
	return v
}

func photographer(name, contact, location, packagePrice string, styles []string) *model.Vendor {
	v := base("photographer", name, contact, location, next())
	v.Fields["package-price"] = packagePrice
	v.Selections["styles"] = styles
	v.Selections[model.SelectionLocations] = []string{"delhi", "mumbai"}
	v.Groups["packages"] = []model.GroupRecordData{
		{Fields: map[string]string{"package-name": "One Day", "price": packagePrice, "deliverables": "400 edited photos"}},
	}
	return v
}

func makeupArtist(name, contact, location, bridalPackage string) *model.Vendor {
	v := base("makeup-artist", name, contact, location, next())
	v.Fields["bridal-package"] = bridalPackage
	v.Fields["travels-to-venue"] = true
	v.Selections["services"] = []string{"bridal", "hair"}
	v.Selections[model.SelectionLocations] = []string{"mumbai", "delhi"}
	return v
}

func eventPlanner(name, contact, location string, eventTypes []string) *model.Vendor {
	v := base("event-planner", name, contact, location, next())
	v.Fields["minimum-budget"] = "5,00,000"
	v.Selections["event-types"] = eventTypes
	v.Selections[model.SelectionLocations] = []string{"jaipur", "goa"}
	return v
}

func anchor(name, contact, location string, languages []string) *model.Vendor {
	v := base("anchor", name, contact, location, next())
	v.Fields["per-event-fee"] = "40,000"
	v.Fields["experience-years"] = float64(8)
	v.Selections["languages"] = languages
	return v
}

func invitationShop(name, contact, location, pricePerCard string) *model.Vendor {
	v := base("invitation-shop", name, contact, location, next())
	v.Fields["price-per-card"] = pricePerCard
	v.Selections["card-styles"] = []string{"traditional", "boxed"}
	v.Groups["card-lines"] = []model.GroupRecordData{
		{Fields: map[string]string{"line-name": "Royal Series", "starting-price": "250"}},
	}
	return v
}

func caterer(name, contact, location, pricePerPlate string, cuisines []string) *model.Vendor {
	v := base("caterer", name, contact, location, next())
	v.Fields["price-per-plate"] = pricePerPlate
	v.Fields["live-counters"] = true
	v.Selections["cuisines"] = cuisines
	v.Selections[model.SelectionLocations] = []string{"delhi", "bengaluru"}
	v.Groups["menus"] = []model.GroupRecordData{
		{Fields: map[string]string{"menu-name": "Silver", "price-per-plate": pricePerPlate}},
	}
	return v
}
