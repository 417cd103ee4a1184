package model

import (
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

func baseFields() []config.FieldDefinition {
	return []config.FieldDefinition{
		{ID: FieldName, Label: "Business Name", Kind: types.FieldKindText, Required: true},
		{ID: FieldContactPerson, Label: "Contact Person", Kind: types.FieldKindText, Required: true},
		{ID: FieldPhone, Label: "Phone Number", Kind: types.FieldKindPhone, Required: true},
		{ID: FieldEmail, Label: "Email", Kind: types.FieldKindEmail},
		{ID: "website", Label: "Website", Kind: types.FieldKindURL},
		{ID: FieldDescription, Label: "Description", Kind: types.FieldKindTextarea, Required: true},
	}
}

func locationsField(required bool) config.FieldDefinition {
	return config.FieldDefinition{
		ID:       SelectionLocations,
		Label:    "Service Locations",
		Kind:     types.FieldKindMultiSelect,
		Required: required,
		Options: []config.FieldOption{
			{ID: "delhi", Name: "Delhi NCR"},
			{ID: "mumbai", Name: "Mumbai"},
			{ID: "bengaluru", Name: "Bengaluru"},
			{ID: "hyderabad", Name: "Hyderabad"},
			{ID: "jaipur", Name: "Jaipur"},
			{ID: "udaipur", Name: "Udaipur"},
			{ID: "goa", Name: "Goa"},
		},
		AllowCustom: true,
	}
}

// DefaultRegistry returns the built-in schemas of the eight vendor
// categories. A schema file given on the command line replaces this
// registry entirely.
func DefaultRegistry() *CategoryRegistry {
	registry := NewCategoryRegistry()
	for _, schema := range defaultSchemas() {
		registry.Register(schema)
	}
	return registry
}

func defaultSchemas() []*config.CategorySchema {
	return []*config.CategorySchema{
		{
			Category: "venue",
			Name:     "Venue",
			Fields: append(baseFields(),
				locationsField(true),
				config.FieldDefinition{ID: "capacity", Label: "Guest Capacity", Kind: types.FieldKindNumber, Required: true},
				config.FieldDefinition{ID: "price-per-plate", Label: "Price Per Plate", Kind: types.FieldKindCurrency, Required: true},
				config.FieldDefinition{
					ID: "venue-type", Label: "Venue Type", Kind: types.FieldKindSelect, Required: true,
					Options: []config.FieldOption{
						{ID: "banquet-hall", Name: "Banquet Hall"},
						{ID: "lawn", Name: "Lawn / Farmhouse"},
						{ID: "hotel", Name: "Hotel"},
						{ID: "palace", Name: "Heritage / Palace"},
					},
				},
				config.FieldDefinition{ID: "in-house-catering", Label: "In-house Catering", Kind: types.FieldKindCheckbox},
			),
			Groups: []config.GroupDefinition{
				{
					ID: "halls", Label: "Halls", Required: true, NameField: "hall-name",
					Fields: []config.SubFieldDefinition{
						{ID: "hall-name", Label: "Hall Name", Required: true},
						{ID: "seating-capacity", Label: "Seating Capacity"},
					},
				},
			},
			MediaSlots: []config.MediaSlotDefinition{
				{ID: "thumbnail", Label: "Cover Photo", Cardinality: types.SlotCardinalitySingle, ExactCount: 1},
				{ID: "gallery", Label: "Photo Gallery", Cardinality: types.SlotCardinalityMany, Cap: 10, MinCount: 3},
			},
		},
		{
			Category: "jeweler",
			Name:     "Jeweler",
			Fields: append(baseFields(),
				locationsField(false),
				config.FieldDefinition{ID: "starting-price", Label: "Starting Price", Kind: types.FieldKindCurrency},
				config.FieldDefinition{
					ID: "specialities", Label: "Specialities", Kind: types.FieldKindMultiSelect, Required: true,
					Options: []config.FieldOption{
						{ID: "kundan", Name: "Kundan"},
						{ID: "polki", Name: "Polki"},
						{ID: "temple", Name: "Temple Jewellery"},
						{ID: "diamond", Name: "Diamond"},
						{ID: "gold", Name: "Gold"},
					},
					AllowCustom: true,
				},
			),
			Groups: []config.GroupDefinition{
				{
					ID: "collections", Label: "Collections",
					Fields: []config.SubFieldDefinition{
						{ID: "collection-name", Label: "Collection Name", Required: true},
						{ID: "price-range", Label: "Price Range"},
					},
				},
			},
			MediaSlots: []config.MediaSlotDefinition{
				{ID: "gallery", Label: "Design Photos", Cardinality: types.SlotCardinalityMany, Cap: 8, ExactCount: 4},
			},
		},
		{
			Category: "photographer",
			Name:     "Photographer",
			Fields: append(baseFields(),
				locationsField(true),
				config.FieldDefinition{ID: "package-price", Label: "Wedding Package Price", Kind: types.FieldKindCurrency, Required: true},
				config.FieldDefinition{
					ID: "styles", Label: "Photography Styles", Kind: types.FieldKindMultiSelect, Required: true,
					Options: []config.FieldOption{
						{ID: "candid", Name: "Candid"},
						{ID: "traditional", Name: "Traditional"},
						{ID: "cinematic", Name: "Cinematic"},
						{ID: "documentary", Name: "Documentary"},
						{ID: "drone", Name: "Drone"},
					},
					AllowCustom: true,
				},
			),
			Groups: []config.GroupDefinition{
				{
					ID: "packages", Label: "Packages", Required: true, NameField: "package-name",
					Fields: []config.SubFieldDefinition{
						{ID: "package-name", Label: "Package Name", Required: true},
						{ID: "price", Label: "Price"},
						{ID: "deliverables", Label: "Deliverables"},
					},
				},
			},
			MediaSlots: []config.MediaSlotDefinition{
				{ID: "thumbnail", Label: "Profile Photo", Cardinality: types.SlotCardinalitySingle, ExactCount: 1},
				{ID: "portfolio", Label: "Portfolio", Cardinality: types.SlotCardinalityMany, Cap: 20, MinCount: 5},
			},
		},
		{
			Category: "makeup-artist",
			Name:     "Makeup Artist",
			Fields: append(baseFields(),
				locationsField(true),
				config.FieldDefinition{ID: "bridal-package", Label: "Bridal Package Price", Kind: types.FieldKindCurrency, Required: true},
				config.FieldDefinition{
					ID: "services", Label: "Services", Kind: types.FieldKindMultiSelect,
					Options: []config.FieldOption{
						{ID: "bridal", Name: "Bridal Makeup"},
						{ID: "engagement", Name: "Engagement Makeup"},
						{ID: "hair", Name: "Hair Styling"},
						{ID: "saree-draping", Name: "Saree Draping"},
					},
				},
				config.FieldDefinition{ID: "travels-to-venue", Label: "Travels To Venue", Kind: types.FieldKindCheckbox},
			),
			Groups: []config.GroupDefinition{
				{
					ID: "looks", Label: "Signature Looks",
					Fields: []config.SubFieldDefinition{
						{ID: "look-name", Label: "Look Name", Required: true},
						{ID: "price", Label: "Price"},
					},
				},
			},
			MediaSlots: []config.MediaSlotDefinition{
				{ID: "gallery", Label: "Work Gallery", Cardinality: types.SlotCardinalityMany, Cap: 12, MinCount: 3},
			},
		},
		{
			Category: "event-planner",
			Name:     "Event Planner",
			Fields: append(baseFields(),
				locationsField(true),
				config.FieldDefinition{ID: "minimum-budget", Label: "Minimum Budget", Kind: types.FieldKindCurrency},
				config.FieldDefinition{
					ID: "event-types", Label: "Event Types", Kind: types.FieldKindMultiSelect, Required: true,
					Options: []config.FieldOption{
						{ID: "wedding", Name: "Wedding"},
						{ID: "sangeet", Name: "Sangeet"},
						{ID: "mehndi", Name: "Mehndi"},
						{ID: "reception", Name: "Reception"},
						{ID: "destination", Name: "Destination Wedding"},
					},
					AllowCustom: true,
				},
			),
			Groups: []config.GroupDefinition{
				{
					ID: "past-events", Label: "Past Events",
					Fields: []config.SubFieldDefinition{
						{ID: "event-name", Label: "Event Name", Required: true},
						{ID: "city", Label: "City"},
					},
				},
			},
			MediaSlots: []config.MediaSlotDefinition{
				{ID: "gallery", Label: "Event Photos", Cardinality: types.SlotCardinalityMany, Cap: 10, MinCount: 2},
			},
		},
		{
			Category: "anchor",
			Name:     "Anchor",
			Fields: append(baseFields(),
				locationsField(false),
				config.FieldDefinition{ID: "per-event-fee", Label: "Per Event Fee", Kind: types.FieldKindCurrency, Required: true},
				config.FieldDefinition{ID: "experience-years", Label: "Years of Experience", Kind: types.FieldKindNumber},
				config.FieldDefinition{
					ID: "languages", Label: "Languages", Kind: types.FieldKindMultiSelect, Required: true,
					Options: []config.FieldOption{
						{ID: "hindi", Name: "Hindi"},
						{ID: "english", Name: "English"},
						{ID: "punjabi", Name: "Punjabi"},
						{ID: "tamil", Name: "Tamil"},
						{ID: "telugu", Name: "Telugu"},
					},
					AllowCustom: true,
				},
			),
			MediaSlots: []config.MediaSlotDefinition{
				{ID: "intro", Label: "Introduction Clip", Cardinality: types.SlotCardinalitySingle, ExactCount: 1},
			},
		},
		{
			Category: "invitation-shop",
			Name:     "Invitation Shop",
			Fields: append(baseFields(),
				locationsField(false),
				config.FieldDefinition{ID: "price-per-card", Label: "Price Per Card", Kind: types.FieldKindCurrency, Required: true},
				config.FieldDefinition{
					ID: "card-styles", Label: "Card Styles", Kind: types.FieldKindMultiSelect,
					Options: []config.FieldOption{
						{ID: "traditional", Name: "Traditional"},
						{ID: "laser-cut", Name: "Laser Cut"},
						{ID: "boxed", Name: "Boxed"},
						{ID: "digital", Name: "Digital / E-invite"},
					},
				},
			),
			Groups: []config.GroupDefinition{
				{
					ID: "card-lines", Label: "Card Lines",
					Fields: []config.SubFieldDefinition{
						{ID: "line-name", Label: "Line Name", Required: true},
						{ID: "starting-price", Label: "Starting Price"},
					},
				},
			},
			MediaSlots: []config.MediaSlotDefinition{
				{ID: "samples", Label: "Sample Designs", Cardinality: types.SlotCardinalityMany, Cap: 15, MinCount: 4},
			},
		},
		{
			Category: "caterer",
			Name:     "Caterer",
			Fields: append(baseFields(),
				locationsField(true),
				config.FieldDefinition{ID: "price-per-plate", Label: "Price Per Plate", Kind: types.FieldKindCurrency, Required: true},
				config.FieldDefinition{
					ID: "cuisines", Label: "Cuisines", Kind: types.FieldKindMultiSelect, Required: true,
					Options: []config.FieldOption{
						{ID: "north-indian", Name: "North Indian"},
						{ID: "south-indian", Name: "South Indian"},
						{ID: "chaat", Name: "Chaat & Street Food"},
						{ID: "continental", Name: "Continental"},
						{ID: "jain", Name: "Jain"},
					},
					AllowCustom: true,
				},
				config.FieldDefinition{ID: "live-counters", Label: "Live Counters", Kind: types.FieldKindCheckbox},
			),
			Groups: []config.GroupDefinition{
				{
					ID: "menus", Label: "Menus", Required: true, NameField: "menu-name",
					Fields: []config.SubFieldDefinition{
						{ID: "menu-name", Label: "Menu Name", Required: true},
						{ID: "price-per-plate", Label: "Price Per Plate"},
					},
				},
			},
			MediaSlots: []config.MediaSlotDefinition{
				{ID: "dishes", Label: "Dish Photos", Cardinality: types.SlotCardinalityMany, Cap: 10, MinCount: 3},
			},
		},
	}
}
