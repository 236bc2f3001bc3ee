// File: services/catalog/destinations.go
package catalog

import (
	"strings"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
)

// Destinations is the full destination table, in presentation order.
var Destinations = []models.Destination{
	{
		ID:       "orlando",
		Name:     "Orlando",
		State:    "Florida",
		Tagline:  "Theme Park Thrills",
		Overview: "Everything is a bit more fun and a whole lot sunnier in Orlando. Whether you want to hit the parks or a hole-in-one, this is the perfect city for the whole fam.",
		KeyFacts: []string{
			"Walt Disney World® is about the same size as San Francisco",
			"Go for maximum thrills at Universal's Islands of Adventure®",
			"Eat your way through WalletHub's \"Best Foodie City in the Country\" for 2023",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Walt Disney World®", Distance: "3 miles from resort"},
			{Name: "Disney Springs®", Distance: "10 miles from resort"},
			{Name: "Gatorland", Distance: "21 miles from resort"},
			{Name: "Icon Park", Distance: "18 miles from resort"},
			{Name: "Kennedy Space Center", Distance: "71 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Lake Apopka Wildlife Trail", Description: "11-mile nature drive with loads of gators, birds, turtles, and fish. REAL Florida experience.", Cost: "Free"},
			{Name: "Blue Spring State Park", Description: "Crystal-clear waters with hundreds of manatees in their natural habitat.", Cost: "$6 per carload"},
			{Name: "Orlando's Cat Cafe", Description: "Four miles from Disney's Animal Kingdom®. Hangout for cool cats.", Cost: "$10 for one hour"},
			{Name: "Wekiwa Springs", Description: "Natural oasis with cool, clear water—pool-perfect 72 degrees year-round.", Cost: "$6 per carload"},
		},
		Categories: []string{"themeparks", "family", "cities"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherYearRound,
			Vibe:    []string{"theme parks", "family-friendly", "entertainment", "dining"},
		},
	},
	{
		ID:       "branson",
		Name:     "Branson",
		State:    "Missouri",
		Tagline:  "From Go Time to Showtime",
		Overview: "Open-air adventure, magical mountain views, and incredible theater shows. Escape to the Ozarks for a true something-for-everyone vacation.",
		KeyFacts: []string{
			"Branson is home to more than 50 theater venues",
			"Go on a coaster ride through the Ozarks at Mountain Adventure Park",
			"Options for all tastes—from American fare to Italian to Mexican",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Table Rock Lake", Distance: "12 miles from resort"},
			{Name: "Silver Dollar City® Theme Park", Distance: "11 miles from resort"},
			{Name: "Buffalo National River", Distance: "51 miles from resort"},
			{Name: "Sight & Sound Theatres®", Distance: "19 miles from resort"},
			{Name: "Titanic™ Museum Attraction", Distance: "7 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Horse Walk Thoroughfare", Description: "Meet the quarter horses and best trick riders in the world at Dolly Parton's Stampede®.", Cost: "Free"},
			{Name: "Dick's Old-Time Five & Dime", Description: "Over 250,000 items in this old-fashioned general store.", Cost: "Free"},
			{Name: "The Branson Coaster", Description: "Top 10 mountain coasters in the world with 360-degree loops.", Cost: "$16.99-$10.99"},
			{Name: "Butterfly Palace", Description: "Two-story aviary filled with thousands of exotic butterflies.", Cost: "$18 for 3-day pass"},
		},
		Categories: []string{"mountains", "family", "entertainment"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherSeasonal,
			Vibe:    []string{"shows", "mountain views", "family-friendly", "outdoor adventure"},
		},
	},
	{
		ID:       "cocoa-beach",
		Name:     "Cocoa Beach",
		State:    "Florida",
		Tagline:  "Surf and Sun",
		Overview: "Year-round warm weather, miles of surf, and the Kennedy Space Center℠ Visitor Complex make Cocoa Beach a stellar place for your next getaway.",
		KeyFacts: []string{
			"Cocoa Beach is home to the largest surf shop in the world—Ron Jon Surf Shop®",
			"Learn how to surf or go on a paddleboard bioluminescent tour",
			"Bars and grills, cute cafes, and plenty of seafood options",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Kennedy Space Center℠ Visitor Complex", Distance: "16.3 miles from resort"},
			{Name: "Cocoa Beach Pier", Distance: "3.2 miles from resort"},
			{Name: "Rocket Launch viewing", Distance: "1.9 miles from resort"},
			{Name: "Bioluminescence Tour", Distance: "48 miles from resort"},
			{Name: "Jetty Park", Distance: "0.2 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Barrier Island Sanctuary", Description: "Access to ocean, lagoon, hiking trail, and coastal biology center.", Cost: "Free"},
			{Name: "Sail Cocoa Beach", Description: "Two-hour catamaran cruise. Kids sail free with adult ticket.", Cost: "Kids free"},
			{Name: "Florida Surf Museum", Description: "Rare boards, vintage decals, surf music, throwback photos.", Cost: "$2 donation"},
			{Name: "Turtle Night Walk", Description: "Witness loggerhead sea turtle lay eggs. Second-largest nesting site in the world.", Cost: "$15-$20"},
		},
		Categories: []string{"beaches", "family", "water"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherYearRound,
			Vibe:    []string{"beach", "surfing", "space coast", "relaxation"},
		},
	},
	{
		ID:       "galveston",
		Name:     "Galveston",
		State:    "Texas",
		Tagline:  "Time to Coast",
		Overview: "An island city on the Gulf Coast of Texas with more than 30 miles of beaches, more than a dozen museums, and several historic homes and mansions.",
		KeyFacts: []string{
			"One of the best spots in the country for bird-watching",
			"Stroll along the Seawall, visit the beach, or go on a historic walking tour",
			"Love seafood? You'll love this place. Not a fan of fish? There are plenty more options, too",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Galveston Island Historic Pleasure Pier", Distance: "8 miles from resort"},
			{Name: "Moody Gardens®", Distance: "5 miles from resort"},
			{Name: "Galveston Railroad Museum", Distance: "18 miles from resort"},
			{Name: "The Grand 1894 Opera House", Distance: "18 miles from resort"},
			{Name: "Bishop's Palace", Distance: "18 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Turtles About Town Trail", Description: "More than 60 colorful sea turtle statues by local artists.", Cost: "Free"},
			{Name: "East Beach Sandcastle Saturdays", Description: "Free sandcastle-building sessions with pros.", Cost: "Free"},
			{Name: "Texas Seaport Museum", Description: "Home to the 1877 tall ship ELISSA.", Cost: "Free for under 5"},
			{Name: "Galveston Island Brewery", Description: "FREE brewery tours every Saturday.", Cost: "Free"},
		},
		Categories: []string{"beaches", "historic", "family"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherWarm,
			Vibe:    []string{"beach", "history", "seafood", "coastal charm"},
		},
	},
	{
		ID:       "gatlinburg",
		Name:     "Gatlinburg",
		State:    "Tennessee",
		Tagline:  "The Great Outdoors",
		Overview: "Nature is calling—and Gatlinburg is the answer. Zip, raft, and hike your way through and around the scenic Smoky Mountains.",
		KeyFacts: []string{
			"The Great Smoky Mountains National Park is the most visited U.S. national park",
			"Get an unreal view of the Smokies from the Gatlinburg SkyLift Park",
			"Feast on BBQ, burgers, and comfort food in cozy diners and rustic cabins",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Gatlinburg Skypark", Distance: "0.4 miles from resort"},
			{Name: "Gatlinburg Mountain Coaster", Distance: "2 miles from resort"},
			{Name: "Ole Smoky Moonshine®", Distance: "0.4 miles from resort"},
			{Name: "Great Smoky Mountains National Park", Distance: "0.6 miles from resort"},
			{Name: "Tuckaleechee Caverns", Distance: "25 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Salt and Pepper Shaker Museum", Description: "More than 20,000 shakers from different eras.", Cost: "Free for under 12"},
			{Name: "Bush's® Visitor Center", Description: "100 years of bean history. Walk inside a can of beans.", Cost: "Free"},
			{Name: "The Great Smoky Firefly Event", Description: "Nature's most extraordinary light show with synchronized fireflies.", Cost: "Free"},
			{Name: "Hillbilly Golf", Description: "Smoky Mountain-style putt-putt down a shady hillside.", Cost: "$9.50 for kids"},
		},
		Categories: []string{"mountains", "family", "outdoor"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherSeasonal,
			Vibe:    []string{"mountains", "hiking", "nature", "outdoor adventure"},
		},
	},
	{
		ID:       "lake-tahoe",
		Name:     "Lake Tahoe",
		State:    "Nevada",
		Tagline:  "Freshwater Fun",
		Overview: "Adventure in every season. Swim, kayak, and windsurf in the summer, hike the Tahoe Rim Trail in the fall or spring, or hit the ski slopes in the winter.",
		KeyFacts: []string{
			"Lake Tahoe averages 300 days of sunshine",
			"Hike or kayak at Emerald Bay State Park—jaw-dropping views included",
			"Feast on everything from American to Mexican, seafood to vegetarian dishes",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Heavenly Village Lake Tahoe", Distance: "6 miles from resort"},
			{Name: "Carson Valley Wildlife & Photography Tours", Distance: "34 miles from resort"},
			{Name: "Vikingsholm", Distance: "20 miles from resort"},
			{Name: "Emerald Bay State Park", Distance: "20 miles from resort"},
			{Name: "Sand Harbor", Distance: "24 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Nevada State Railroad Museum", Description: "Historic trains featured in old cowboy movies and TV westerns.", Cost: "Free for under 17"},
			{Name: "Tallac Historic Site", Description: "150-acre lakefront property showcasing Tahoe's \"Era of Opulence\".", Cost: "Free"},
			{Name: "Vikingsholm", Description: "Lake Tahoe's hidden castle with Scandinavian architecture.", Cost: "Free under 7"},
			{Name: "Monkey Rock", Description: "Short hike to gorilla-shaped rock with jaw-dropping Lake Tahoe view.", Cost: "$2 per person"},
		},
		Categories: []string{"mountains", "water", "outdoor"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherSeasonal,
			Vibe:    []string{"lake", "skiing", "hiking", "scenic beauty"},
		},
	},
	{
		ID:       "las-vegas",
		Name:     "Las Vegas",
		State:    "Nevada",
		Tagline:  "Viva La Vacation",
		Overview: "Live it up in Las Vegas—family edition. Go beyond nightlife and casinos to nearby natural attractions like the Grand Canyon.",
		KeyFacts: []string{
			"The Grand Canyon is 277 miles long and 18 miles wide",
			"Reach new heights on the High Roller®—the second largest Ferris wheel in the world",
			"Find new faves—from fine dining to budget eats to delectable food truck options",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Golfing", Distance: "5 miles from resort"},
			{Name: "Vegas Motor Speedway", Distance: "15 miles from resort"},
			{Name: "Lake Mead", Distance: "36 miles from resort"},
			{Name: "The Sphere", Distance: "0.2 miles from resort"},
			{Name: "Fremont Street Experience", Distance: "6 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Silverton Las Vegas Mermaid Show", Description: "Real mermaids in 117,000-gallon aquarium.", Cost: "Free"},
			{Name: "Hershey's Chocolate World", Description: "Two-story factory of fun. Customize chocolate bars.", Cost: "Free admission"},
			{Name: "Fountains of Bellagio®", Description: "More than 1,200 lighted fountains spring to life every 15-30 minutes.", Cost: "Free"},
			{Name: "Bellagio® Conservatory & Botanical Gardens", Description: "Four seasonal floral fantasies per year.", Cost: "Free"},
		},
		Categories: []string{"cities", "entertainment", "themeparks"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherWarm,
			Vibe:    []string{"entertainment", "shows", "dining", "attractions"},
		},
	},
	{
		ID:       "myrtle-beach",
		Name:     "Myrtle Beach",
		State:    "South Carolina",
		Tagline:  "Catch a Wave",
		Overview: "The Carolina coast is calling. Get out to the Grand Strand with the whole fam for sunny skies and ocean vibes. Myrtle Beach has shopping and golf courses galore.",
		KeyFacts: []string{
			"Myrtle Beach has more mini golf courses per square mile than any other city in the world",
			"Go 20 stories above the Atlantic on the Myrtle Beach SkyWheel",
			"Fresh oysters, shrimp, and fish. Italian, Mexican, and American fare also available",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Broadway at the Beach", Distance: "6 miles from resort"},
			{Name: "Wonderworks", Distance: "6 miles from resort"},
			{Name: "Brookgreen Gardens", Distance: "14 miles from resort"},
			{Name: "Ripley's Aquarium® of Myrtle Beach", Distance: "6 miles from resort"},
			{Name: "Murrels Inlet", Distance: "11 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "L.W. Paul Living History Farm", Description: "Immerse in life on a Horry County farm. One-hour tours every Saturday.", Cost: "Free"},
			{Name: "Apollo Moonprints in Cement", Description: "Prints made by Charles Duke, 10th man to walk on moon.", Cost: "Free"},
			{Name: "Savannah's Playground", Description: "Multi-acre park for kids of all ages and abilities.", Cost: "Free"},
			{Name: "Family Kingdom on the Grand Strand", Description: "Old-time amusement park by the sea. Nearly 40 rides.", Cost: "Free admission"},
		},
		Categories: []string{"beaches", "family", "golf"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherWarm,
			Vibe:    []string{"beach", "boardwalk", "golf", "family entertainment"},
		},
	},
	{
		ID:       "new-orleans",
		Name:     "New Orleans",
		State:    "Louisiana",
		Tagline:  "Jazzy Times Ahead",
		Overview: "Head down to the Bayou for big-time fun. Go on a swamp tour, take in the iconic architecture, and eat all the Cajun food you can handle.",
		KeyFacts: []string{
			"New Orleans is the birthplace of jazz music",
			"Get out on the water with an air boat swamp tour or a steamboat jazz cruise",
			"Come for the Creole food and stay for the pillowy beignets",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Bourbon Street", Distance: "0.2 miles from resort"},
			{Name: "Jackson Square in French Quarter", Distance: "1 mile from resort"},
			{Name: "Woldenburg Riverfront Park", Distance: "1 mile from resort"},
			{Name: "Mardi Gras World", Distance: "1.9 miles from resort"},
			{Name: "Royal Carriages", Distance: "1 mile from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Nola Tour Guy - Garden District Walking Tour", Description: "Local experts take you through historic neighborhood.", Cost: "Free, tips welcome"},
			{Name: "Live Street Performances", Description: "Brass bands, jazz, hip-hop acts on street corners.", Cost: "Free, tips appreciated"},
			{Name: "Music Box Village", Description: "Musical houses that let out sounds when touched.", Cost: "Free admission"},
			{Name: "Hansen's Sno-Bliz", Description: "85-year tradition. Sno-ball made with fluffy ice and homemade syrups.", Cost: "Low cost"},
		},
		Categories: []string{"cities", "historic", "entertainment"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherWarm,
			Vibe:    []string{"culture", "music", "food", "history"},
		},
	},
	{
		ID:       "scottsdale",
		Name:     "Scottsdale",
		State:    "Arizona",
		Tagline:  "Relaxation Mode On",
		Overview: "Absolute serenity. With destination spas, more than 200 golf courses, and stunning rock formations, Scottsdale is the perfect place to turn relaxation all the way up.",
		KeyFacts: []string{
			"Scottsdale has more spas per capita than any other city in the U.S.",
			"Make 30,000 acres of desert your playground at the McDowell Sonoran Preserve",
			"Diverse culinary landscape with everything from fine dining to cozy cafes",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Old Town Scottsdale", Distance: "11 miles from resort"},
			{Name: "Pink® Jeep® Scenic Rim Tour", Distance: "111 miles from resort"},
			{Name: "Phoenix Zoo", Distance: "19 miles from resort"},
			{Name: "Talking Stick Entertainment District", Distance: "10 miles from resort"},
			{Name: "Grand Canyon", Distance: "219 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Old Town Scottsdale Parada del Sol Rodeo Museum", Description: "Packed with Scottsdale rodeo history. Kids can climb on bulls for photos.", Cost: "Free"},
			{Name: "Salt River", Description: "Oasis in Sonoran Desert. See wild horses, eagles, mud turtles, deer.", Cost: "Free admission"},
			{Name: "Little Canyon Park", Description: "Bank Shot Basketball Court—mini golf with basketball twist.", Cost: "Free"},
			{Name: "Desert Botanical Gardens Flashlight Nights", Description: "Self-guided Saturday adventures after dark.", Cost: "$9.95 for kids"},
		},
		Categories: []string{"cities", "golf", "relaxation"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherWarm,
			Vibe:    []string{"spa", "golf", "desert", "luxury"},
		},
	},
	{
		ID:       "williamsburg",
		Name:     "Williamsburg",
		State:    "Virginia",
		Tagline:  "Living History",
		Overview: "Experience time travel in Williamsburg. Roam the cobblestone streets and watch lively reenactments. When you've had your fill of history, tap into present-day fun.",
		KeyFacts: []string{
			"Williamsburg was one of America's first planned cities",
			"Watch for birds from the overlook or hike the trails at York River State Park",
			"Pick from over 40 dining options, including colonial-themed restaurants and taverns",
		},
		NearbyAttractions: []models.Attraction{
			{Name: "Busch Gardens", Distance: "12 miles from resort"},
			{Name: "Colonial Williamsburg", Distance: "8 miles from resort"},
			{Name: "Virginia Beach", Distance: "68 miles from resort"},
			{Name: "Water Country USA®", Distance: "13 miles from resort"},
			{Name: "Williamsburg Tasting Trail", Distance: "14 miles from resort"},
		},
		BudgetActivities: []models.BudgetActivity{
			{Name: "Kidsburg at Veterans Park", Description: "Jamestown-themed playground with replica ship.", Cost: "Free"},
			{Name: "Virginia Living Museum", Description: "Zoo, nature park, aquarium, science center, planetarium all-in-one.", Cost: "$16.95 for kids"},
			{Name: "Spooks and Legends Haunted Tour", Description: "After-dark walking tour of colonial Williamsburg.", Cost: "Free under 6"},
			{Name: "Bush Neck Farm", Description: "Berry picking overlooking the Chickahominy River.", Cost: "Free visit, $2/lb berries"},
		},
		Categories: []string{"historic", "themeparks", "family"},
		Attributes: models.DestinationAttributes{
			Weather: models.WeatherSeasonal,
			Vibe:    []string{"history", "colonial", "theme parks", "education"},
		},
	},
}

// categoryMapping pairs a category with its destination ids. Held as an
// ordered slice; lookup priority is part of the parser's contract.
type categoryMapping struct {
	Category string
	IDs      []string
}

// CategoryMappings maps natural-language categories to destination ids.
var CategoryMappings = []categoryMapping{
	{"beaches", []string{"cocoa-beach", "galveston", "myrtle-beach"}},
	{"mountains", []string{"lake-tahoe", "gatlinburg", "branson"}},
	{"cities", []string{"las-vegas", "new-orleans", "scottsdale", "orlando"}},
	{"themeparks", []string{"orlando", "williamsburg"}},
	{"historic", []string{"williamsburg", "new-orleans", "galveston"}},
	{"family", []string{"orlando", "branson", "williamsburg", "myrtle-beach", "cocoa-beach", "gatlinburg"}},
	{"entertainment", []string{"branson", "las-vegas", "new-orleans"}},
	{"golf", []string{"scottsdale", "myrtle-beach", "orlando"}},
	{"water", []string{"cocoa-beach", "galveston", "myrtle-beach", "lake-tahoe"}},
	{"outdoor", []string{"gatlinburg", "lake-tahoe", "branson"}},
	{"relaxation", []string{"scottsdale", "lake-tahoe"}},
}

// AttributeMappings maps attribute type/value pairs to destination ids.
var AttributeMappings = map[string]map[string][]string{
	"weather": {
		"warm":      {"orlando", "scottsdale", "las-vegas", "new-orleans", "cocoa-beach", "galveston", "myrtle-beach"},
		"yearRound": {"orlando", "las-vegas", "scottsdale", "cocoa-beach"},
		"seasonal":  {"lake-tahoe", "gatlinburg", "branson", "williamsburg"},
	},
	"activities": {
		"skiing":     {"lake-tahoe"},
		"surfing":    {"cocoa-beach"},
		"golf":       {"scottsdale", "myrtle-beach", "orlando"},
		"hiking":     {"gatlinburg", "lake-tahoe", "scottsdale"},
		"shows":      {"branson", "las-vegas"},
		"themeparks": {"orlando", "williamsburg"},
	},
}

// GetDestinationByID returns the destination with the given id, or nil.
func GetDestinationByID(id string) *models.Destination {
	for i := range Destinations {
		if Destinations[i].ID == id {
			return &Destinations[i]
		}
	}
	return nil
}

// GetDestinationsByCategory returns the destinations mapped to a category,
// in mapping order.
func GetDestinationsByCategory(category string) []models.Destination {
	for _, m := range CategoryMappings {
		if m.Category == category {
			return destinationsByIDs(m.IDs)
		}
	}
	return nil
}

// GetDestinationsByAttribute returns the destinations matching an attribute
// type ("weather" or "activities") and value.
func GetDestinationsByAttribute(attributeType, attributeValue string) []models.Destination {
	values, ok := AttributeMappings[attributeType]
	if !ok {
		return nil
	}
	return destinationsByIDs(values[attributeValue])
}

// SearchDestinations does a free-text match over name, state, overview,
// tagline and categories.
func SearchDestinations(query string) []models.Destination {
	lowerQuery := strings.ToLower(query)
	var results []models.Destination
	for _, dest := range Destinations {
		if strings.Contains(strings.ToLower(dest.Name), lowerQuery) ||
			strings.Contains(strings.ToLower(dest.State), lowerQuery) ||
			strings.Contains(strings.ToLower(dest.Overview), lowerQuery) ||
			strings.Contains(strings.ToLower(dest.Tagline), lowerQuery) ||
			anyContains(dest.Categories, lowerQuery) {
			results = append(results, dest)
		}
	}
	return results
}

// GetDestinationDisplayName renders "Name, State" for an id, or "".
func GetDestinationDisplayName(id string) string {
	dest := GetDestinationByID(id)
	if dest == nil {
		return ""
	}
	return dest.DisplayName()
}

func destinationsByIDs(ids []string) []models.Destination {
	var dests []models.Destination
	for _, id := range ids {
		if d := GetDestinationByID(id); d != nil {
			dests = append(dests, *d)
		}
	}
	return dests
}

func anyContains(values []string, substr string) bool {
	for _, v := range values {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
