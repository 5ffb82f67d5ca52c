package atlas

// Seed returns the curated fixture the atlas starts with. The working set
// only grows from here: census results are merged in by ID, nothing is ever
// removed.
func Seed() []Estuary {
	return []Estuary{
		// North America
		{
			ID: "chesapeake-bay", Name: "Chesapeake Bay", Location: "USA (MD/VA)",
			Coordinates:      Coordinates{Lat: 37.5, Lng: -76.0},
			ShortDescription: "The largest estuary in the United States, a drowned river valley.",
			Scale:            ScaleLarge, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/chesapeake/400/300",
		},
		{
			ID: "san-francisco-bay", Name: "San Francisco Bay", Location: "USA (CA)",
			Coordinates:      Coordinates{Lat: 37.8, Lng: -122.4},
			ShortDescription: "A complex shallow estuary heavily modified by human activity.",
			Scale:            ScaleLarge, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/sfbay/400/300",
		},
		{
			ID: "puget-sound", Name: "Puget Sound", Location: "USA (WA)",
			Coordinates:      Coordinates{Lat: 47.6, Lng: -122.4},
			ShortDescription: "A complex fjord system of flooded glacial valleys.",
			Scale:            ScaleLarge, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/puget/400/300",
		},
		{
			ID: "delaware-bay", Name: "Delaware Bay", Location: "USA (DE/NJ)",
			Coordinates:      Coordinates{Lat: 39.0, Lng: -75.2},
			ShortDescription: "A major estuary outlet for the Delaware River, critical for horseshoe crabs.",
			Scale:            ScaleLarge, PopulationDensity: PopulationMedium, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/delaware/400/300",
		},
		{
			ID: "st-lawrence", Name: "Gulf of St. Lawrence", Location: "Canada",
			Coordinates:      Coordinates{Lat: 48.0, Lng: -61.0},
			ShortDescription: "One of the world's largest estuaries, with a unique two-layer flow.",
			Scale:            ScaleMassive, PopulationDensity: PopulationMedium, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/stlawrence/400/300",
		},
		{
			ID: "mississippi-delta", Name: "Mississippi River Delta", Location: "USA (LA)",
			Coordinates:      Coordinates{Lat: 29.1, Lng: -89.2},
			ShortDescription: "A bird-foot delta dominated by riverine sediment processes.",
			Scale:            ScaleMassive, PopulationDensity: PopulationMedium, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/mississippi/400/300",
		},
		{
			ID: "fraser-river", Name: "Fraser River Estuary", Location: "Canada (BC)",
			Coordinates:      Coordinates{Lat: 49.1, Lng: -123.1},
			ShortDescription: "A major delta on the Strait of Georgia, vital for salmon migration.",
			Scale:            ScaleMedium, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/fraser/400/300",
		},

		// South America
		{
			ID: "amazon-delta", Name: "Amazon Delta", Location: "Brazil",
			Coordinates:      Coordinates{Lat: -0.5, Lng: -49.5},
			ShortDescription: "The world's largest discharge of freshwater, creating a massive plume.",
			Scale:            ScaleMassive, PopulationDensity: PopulationLow, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/amazon/400/300",
		},
		{
			ID: "rio-de-la-plata", Name: "Rio de la Plata", Location: "Argentina/Uruguay",
			Coordinates:      Coordinates{Lat: -35.0, Lng: -57.0},
			ShortDescription: "A funnel-shaped estuary formed by the Uruguay and Paraná rivers.",
			Scale:            ScaleMassive, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityMedium,
			Image: "https://picsum.photos/seed/plata/400/300",
		},
		{
			ID: "lagoa-dos-patos", Name: "Lagoa dos Patos", Location: "Brazil",
			Coordinates:      Coordinates{Lat: -31.0, Lng: -51.5},
			ShortDescription: "The largest barrier-lagoon system in South America.",
			Scale:            ScaleLarge, PopulationDensity: PopulationMedium, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/patos/400/300",
		},
		{
			ID: "orinoco-delta", Name: "Orinoco Delta", Location: "Venezuela",
			Coordinates:      Coordinates{Lat: 8.9, Lng: -61.3},
			ShortDescription: "A vast, fan-shaped delta largely covered in undisturbed rainforest.",
			Scale:            ScaleLarge, PopulationDensity: PopulationLow, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/orinoco/400/300",
		},

		// Europe
		{
			ID: "thames-estuary", Name: "Thames Estuary", Location: "UK",
			Coordinates:      Coordinates{Lat: 51.5, Lng: 0.6},
			ShortDescription: "Macrotidal estuary with significant historic anthropogenic influence.",
			Scale:            ScaleMedium, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityMedium,
			Image: "https://picsum.photos/seed/thames/400/300",
		},
		{
			ID: "severn-estuary", Name: "Severn Estuary", Location: "UK",
			Coordinates:      Coordinates{Lat: 51.5, Lng: -3.0},
			ShortDescription: "Features the second highest tidal range in the world.",
			Scale:            ScaleLarge, PopulationDensity: PopulationMedium, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/severn/400/300",
		},
		{
			ID: "shannon-estuary", Name: "Shannon Estuary", Location: "Ireland",
			Coordinates:      Coordinates{Lat: 52.6, Lng: -9.0},
			ShortDescription: "Ireland's largest river estuary, a deep-water habitat.",
			Scale:            ScaleMedium, PopulationDensity: PopulationLow, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/shannon/400/300",
		},
		{
			ID: "gironde-estuary", Name: "Gironde Estuary", Location: "France",
			Coordinates:      Coordinates{Lat: 45.4, Lng: -0.9},
			ShortDescription: "Large estuary formed by the confluence of Dordogne and Garonne.",
			Scale:            ScaleMedium, PopulationDensity: PopulationMedium, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/gironde/400/300",
		},
		{
			ID: "rhine-meuse", Name: "Rhine-Meuse-Scheldt", Location: "Netherlands",
			Coordinates:      Coordinates{Lat: 51.8, Lng: 4.3},
			ShortDescription: "A highly engineered delta protecting Northern Europe.",
			Scale:            ScaleLarge, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityMedium,
			Image: "https://picsum.photos/seed/rhine/400/300",
		},
		{
			ID: "tagus-estuary", Name: "Tagus Estuary", Location: "Portugal",
			Coordinates:      Coordinates{Lat: 38.7, Lng: -9.0},
			ShortDescription: "One of the largest wetlands in Europe.",
			Scale:            ScaleMedium, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/tagus/400/300",
		},
		{
			ID: "oslofjord", Name: "Oslofjord", Location: "Norway",
			Coordinates:      Coordinates{Lat: 59.5, Lng: 10.6},
			ShortDescription: "A scenic fjord inlet in the south-east of Norway.",
			Scale:            ScaleLarge, PopulationDensity: PopulationMedium, BiodiversityRating: BiodiversityMedium,
			Image: "https://picsum.photos/seed/oslo/400/300",
		},

		// Africa
		{
			ID: "nile-delta", Name: "Nile Delta", Location: "Egypt",
			Coordinates:      Coordinates{Lat: 31.0, Lng: 31.0},
			ShortDescription: "Arcuate delta, historically the breadbasket of civilizations.",
			Scale:            ScaleLarge, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityMedium,
			Image: "https://picsum.photos/seed/nile/400/300",
		},
		{
			ID: "niger-delta", Name: "Niger Delta", Location: "Nigeria",
			Coordinates:      Coordinates{Lat: 4.8, Lng: 6.0},
			ShortDescription: "A vast, oil-rich delta with complex mangrove systems.",
			Scale:            ScaleLarge, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/niger/400/300",
		},
		{
			ID: "congo-estuary", Name: "Congo Estuary", Location: "DRC/Angola",
			Coordinates:      Coordinates{Lat: -6.0, Lng: 12.4},
			ShortDescription: "Deep submarine canyon estuary with high discharge velocity.",
			Scale:            ScaleMassive, PopulationDensity: PopulationMedium, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/congo/400/300",
		},
		{
			ID: "st-lucia", Name: "Lake St. Lucia", Location: "South Africa",
			Coordinates:      Coordinates{Lat: -28.0, Lng: 32.4},
			ShortDescription: "Africa's largest estuarine system, part of iSimangaliso Wetland Park.",
			Scale:            ScaleMedium, PopulationDensity: PopulationLow, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/stlucia/400/300",
		},

		// Asia
		{
			ID: "ganges-brahmaputra", Name: "Ganges-Brahmaputra", Location: "Bangladesh",
			Coordinates:      Coordinates{Lat: 22.5, Lng: 89.5},
			ShortDescription: "The world's largest delta, home to the Sundarbans.",
			Scale:            ScaleMassive, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/ganges/400/300",
		},
		{
			ID: "mekong-delta", Name: "Mekong Delta", Location: "Vietnam",
			Coordinates:      Coordinates{Lat: 10.0, Lng: 106.0},
			ShortDescription: "A tide-dominated delta; the agricultural heart of Vietnam.",
			Scale:            ScaleMassive, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/mekong/400/300",
		},
		{
			ID: "red-river-delta", Name: "Red River Delta", Location: "Vietnam",
			Coordinates:      Coordinates{Lat: 20.3, Lng: 106.5},
			ShortDescription: "Agriculturally intensive delta in Northern Vietnam.",
			Scale:            ScaleLarge, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/redriver/400/300",
		},
		{
			ID: "saigon-dongnai-estuary", Name: "Saigon-Dongnai", Location: "Vietnam",
			Coordinates:      Coordinates{Lat: 10.4, Lng: 106.9},
			ShortDescription: "Complex mangrove estuary system including Can Gio.",
			Scale:            ScaleMedium, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityVeryHigh,
			Image: "https://picsum.photos/seed/saigon/400/300",
		},
		{
			ID: "yangtze-delta", Name: "Yangtze Delta", Location: "China",
			Coordinates:      Coordinates{Lat: 31.2, Lng: 121.8},
			ShortDescription: "A colossal delta supporting one of the world's largest urban clusters.",
			Scale:            ScaleMassive, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityMedium,
			Image: "https://picsum.photos/seed/yangtze/400/300",
		},
		{
			ID: "pearl-river-delta", Name: "Pearl River Delta", Location: "China",
			Coordinates:      Coordinates{Lat: 22.3, Lng: 113.5},
			ShortDescription: "Complex system of distributaries in South China.",
			Scale:            ScaleLarge, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/pearl/400/300",
		},
		{
			ID: "tokyo-bay", Name: "Tokyo Bay", Location: "Japan",
			Coordinates:      Coordinates{Lat: 35.5, Lng: 139.9},
			ShortDescription: "Highly urbanized semi-enclosed bay.",
			Scale:            ScaleMedium, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityLow,
			Image: "https://picsum.photos/seed/tokyo/400/300",
		},
		{
			ID: "seto-inland-sea", Name: "Seto Inland Sea", Location: "Japan",
			Coordinates:      Coordinates{Lat: 34.2, Lng: 133.5},
			ShortDescription: "A vast body of water separating Honshu, Shikoku, and Kyushu.",
			Scale:            ScaleLarge, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/seto/400/300",
		},

		// Oceania
		{
			ID: "murray-mouth", Name: "Murray Mouth", Location: "Australia",
			Coordinates:      Coordinates{Lat: -35.5, Lng: 138.9},
			ShortDescription: "Wave-dominated estuary, often restricted by sand deposits.",
			Scale:            ScaleSmall, PopulationDensity: PopulationLow, BiodiversityRating: BiodiversityMedium,
			Image: "https://picsum.photos/seed/murray/400/300",
		},
		{
			ID: "spencer-gulf", Name: "Spencer Gulf", Location: "Australia",
			Coordinates:      Coordinates{Lat: -34.0, Lng: 137.0},
			ShortDescription: "Inverse estuary where evaporation exceeds freshwater input.",
			Scale:            ScaleLarge, PopulationDensity: PopulationLow, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/spencer/400/300",
		},
		{
			ID: "derwent-estuary", Name: "Derwent Estuary", Location: "Australia (Tas)",
			Coordinates:      Coordinates{Lat: -42.9, Lng: 147.3},
			ShortDescription: "Drowned river valley hosting the city of Hobart.",
			Scale:            ScaleMedium, PopulationDensity: PopulationMedium, BiodiversityRating: BiodiversityMedium,
			Image: "https://picsum.photos/seed/derwent/400/300",
		},
		{
			ID: "kaipara-harbour", Name: "Kaipara Harbour", Location: "New Zealand",
			Coordinates:      Coordinates{Lat: -36.4, Lng: 174.2},
			ShortDescription: "One of the largest harbours in the world by area.",
			Scale:            ScaleLarge, PopulationDensity: PopulationLow, BiodiversityRating: BiodiversityHigh,
			Image: "https://picsum.photos/seed/kaipara/400/300",
		},
	}
}
