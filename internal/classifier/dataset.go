package classifier

import (
	"github.com/trailsentry/tourist-safety-api/internal/models"
)

// Dataset is the curated geographic reference data the classifier matches
// against. Restricted areas and forests are evaluated in registration order;
// the first anchor within threshold wins.
type Dataset struct {
	Bounds          models.RegionBounds
	RestrictedAreas []models.NamedArea
	Forests         []models.NamedArea
	Cities          []models.CityAnchor
}

// DefaultDataset covers the Northeast India operating region of the platform.
func DefaultDataset() Dataset {
	return Dataset{
		Bounds: models.RegionBounds{
			North: 29.5,
			South: 21.9,
			East:  97.5,
			West:  88.0,
		},
		RestrictedAreas: []models.NamedArea{
			{
				Name:        "Indo-China Border (Upper Siang)",
				State:       "Arunachal Pradesh",
				Anchor:      models.GeoPoint{Latitude: 28.55, Longitude: 94.0},
				Description: "restricted international border area - inner line permit and army clearance required",
			},
			{
				Name:        "Indo-China Border (Tawang Sector)",
				State:       "Arunachal Pradesh",
				Anchor:      models.GeoPoint{Latitude: 27.72, Longitude: 91.82},
				Description: "restricted border sector near Bum La pass - civilian movement controlled",
			},
			{
				Name:        "Indo-Myanmar Border (Moreh)",
				State:       "Manipur",
				Anchor:      models.GeoPoint{Latitude: 24.2491, Longitude: 94.3063},
				Description: "international border crossing - restricted zone beyond the trade gate",
			},
			{
				Name:        "Indo-Bangladesh Border (Dawki)",
				State:       "Meghalaya",
				Anchor:      models.GeoPoint{Latitude: 25.1852, Longitude: 92.0167},
				Description: "international border area along the Umngot river - BSF controlled",
			},
		},
		Forests: []models.NamedArea{
			{
				Name:        "Kaziranga National Park",
				State:       "Assam",
				Anchor:      models.GeoPoint{Latitude: 26.5775, Longitude: 93.1711},
				Description: "protected rhinoceros habitat, entry only with registered guides",
			},
			{
				Name:        "Manas National Park",
				State:       "Assam",
				Anchor:      models.GeoPoint{Latitude: 26.6594, Longitude: 90.8950},
				Description: "tiger reserve bordering Bhutan, limited mobile coverage",
			},
			{
				Name:        "Nameri National Park",
				State:       "Assam",
				Anchor:      models.GeoPoint{Latitude: 26.9324, Longitude: 92.8772},
				Description: "dense riverine forest, elephant movement corridors",
			},
			{
				Name:        "Namdapha National Park",
				State:       "Arunachal Pradesh",
				Anchor:      models.GeoPoint{Latitude: 27.4915, Longitude: 96.3869},
				Description: "remote rainforest reserve, no road network inside",
			},
			{
				Name:        "Nokrek Biosphere Reserve",
				State:       "Meghalaya",
				Anchor:      models.GeoPoint{Latitude: 25.45, Longitude: 90.32},
				Description: "hill forest reserve, steep and poorly mapped trails",
			},
			{
				Name:        "Keibul Lamjao National Park",
				State:       "Manipur",
				Anchor:      models.GeoPoint{Latitude: 24.5089, Longitude: 93.7764},
				Description: "floating wetland park on Loktak lake",
			},
		},
		Cities: []models.CityAnchor{
			{Name: "Guwahati", State: "Assam", Anchor: models.GeoPoint{Latitude: 26.1445, Longitude: 91.7362}},
			{Name: "Shillong", State: "Meghalaya", Anchor: models.GeoPoint{Latitude: 25.5788, Longitude: 91.8933}},
			{Name: "Itanagar", State: "Arunachal Pradesh", Anchor: models.GeoPoint{Latitude: 27.0844, Longitude: 93.6053}},
			{Name: "Dibrugarh", State: "Assam", Anchor: models.GeoPoint{Latitude: 27.4728, Longitude: 94.9120}},
			{Name: "Jorhat", State: "Assam", Anchor: models.GeoPoint{Latitude: 26.7509, Longitude: 94.2037}},
			{Name: "Tezpur", State: "Assam", Anchor: models.GeoPoint{Latitude: 26.6338, Longitude: 92.7926}},
			{Name: "Silchar", State: "Assam", Anchor: models.GeoPoint{Latitude: 24.8333, Longitude: 92.7789}},
			{Name: "Imphal", State: "Manipur", Anchor: models.GeoPoint{Latitude: 24.8170, Longitude: 93.9368}},
			{Name: "Aizawl", State: "Mizoram", Anchor: models.GeoPoint{Latitude: 23.7271, Longitude: 92.7176}},
			{Name: "Kohima", State: "Nagaland", Anchor: models.GeoPoint{Latitude: 25.6751, Longitude: 94.1086}},
			{Name: "Agartala", State: "Tripura", Anchor: models.GeoPoint{Latitude: 23.8315, Longitude: 91.2868}},
			{Name: "Gangtok", State: "Sikkim", Anchor: models.GeoPoint{Latitude: 27.3389, Longitude: 88.6065}},
		},
	}
}
