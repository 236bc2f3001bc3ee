// File: services/assistant/responses.go
package assistant

import (
	"fmt"
	"strings"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
	"github.com/carlos-tribe/holly-assistant-hicv/services/catalog"
)

// Respond renders Holly's reply to a classified intent. Templates are fixed
// strings; only entity values are interpolated.
func Respond(intent models.VoiceIntent, currentStep models.BookingStep, state models.BookingState) string {
	switch intent.Type {
	case models.IntentDestinationSelection:
		return destinationResponse(intent.Destination, state)

	case models.IntentDetailsVerification:
		return detailsResponse(intent.Details)

	case models.IntentFlexibleDateSelection:
		if intent.Flexible != nil && intent.Flexible.Option != nil {
			opt := intent.Flexible.Option
			return fmt.Sprintf("Perfect! %s at %s - that's %d nights starting %s. This looks great! Shall we lock it in?",
				opt.Label, opt.PropertyName, opt.Nights, opt.CheckIn.Format("January 2"))
		}
		return "Which date option interests you? You can say 'first option', 'the November one', or tell me what you're looking for."

	case models.IntentPropertyMatching:
		if intent.Property != nil && intent.Property.Confirmed != nil {
			if *intent.Property.Confirmed {
				return "Excellent! Your property is confirmed. Let's schedule your resort tour."
			}
			return "No problem. Let me find another option for you."
		}
		return "Thanks for sharing! Let me use that to find your perfect match."

	case models.IntentDateSelection:
		if intent.Dates != nil && intent.Dates.CheckIn != nil && intent.Dates.CheckOut != nil {
			duration := intent.Dates.Duration
			if duration == 0 {
				duration = 5
			}
			return fmt.Sprintf("Perfect! I've set your check-in for %s and check-out for %s. That's %d nights total. Now let's schedule your property tour to secure your $100 cash back. Would morning, afternoon, or evening work best for you?",
				intent.Dates.CheckIn.Format("Monday, January 2"),
				intent.Dates.CheckOut.Format("Monday, January 2"),
				duration)
		}
		return "Could you clarify your travel dates? You can say something like 'next Friday' or a specific date like 'March 15th'."

	case models.IntentTimeSelection:
		if intent.Time != nil && (intent.Time.Time != "" || intent.Time.Period != "") {
			timeStr := intent.Time.Time
			if timeStr == "" {
				timeStr = "a " + intent.Time.Period + " slot"
			}
			return fmt.Sprintf("Great! I've reserved %s for your property tour. You're all set! Your booking is complete. You'll receive a confirmation email shortly with all the details of your Orlando vacation package.", timeStr)
		}
		return "What time works best for your tour? You can say a specific time like '2:30 PM' or just 'morning', 'afternoon', or 'evening'."

	case models.IntentConfirmation:
		if intent.Confirmation != nil && intent.Confirmation.Confirmed {
			return positiveConfirmationResponse(currentStep)
		}
		return "No problem. What would you like to change?"

	case models.IntentQuestion:
		topic := ""
		if intent.Question != nil {
			topic = intent.Question.Topic
		}
		return questionResponse(topic)

	case models.IntentCorrection:
		return "Let me help you with that. What would you like to change?"
	}

	return contextualHelp(currentStep)
}

func detailsResponse(entities *models.DetailsEntities) string {
	if entities == nil {
		entities = &models.DetailsEntities{}
	}

	if entities.Confirmation {
		return "Perfect! Your details are confirmed. Now let's choose your destination."
	}

	switch {
	case entities.ZipCode != "" && entities.GuestCount > 0:
		return fmt.Sprintf("Great! I have your zip code as %s and %d %s. Is that correct?",
			entities.ZipCode, entities.GuestCount, guestWord(entities.GuestCount))
	case entities.ZipCode != "":
		return fmt.Sprintf("I have your zip code as %s. How many guests will be traveling?", entities.ZipCode)
	case entities.GuestCount > 0:
		return fmt.Sprintf("Got it, %d %s. What's your zip code?", entities.GuestCount, guestWord(entities.GuestCount))
	}

	return "Please tell me your zip code and how many guests will be traveling. You can say something like 'zip code 32801 for 4 people'."
}

func guestWord(count int) string {
	if count == 1 {
		return "guest"
	}
	return "guests"
}

func destinationResponse(entity *models.DestinationSelectionEntity, state models.BookingState) string {
	if entity == nil {
		return "I have 11 amazing destinations across the country. Would you like to explore by location type, activities, or see what's most popular?"
	}

	switch entity.Method {
	case models.MethodDirect:
		if entity.DestinationID != "" {
			if dest := catalog.GetDestinationByID(entity.DestinationID); dest != nil {
				return fmt.Sprintf("Excellent choice! %s, %s - %s. %s Ready to see our properties there?",
					dest.Name, dest.State, strings.ToLower(dest.Tagline), dest.KeyFacts[0])
			}
		}
		return "I didn't quite catch that destination. Could you repeat which destination you'd like to visit?"

	case models.MethodCategory:
		if entity.Category != "" && len(entity.DestinationIDs) > 0 {
			dests := resolveDestinations(entity.DestinationIDs, 3)
			switch len(dests) {
			case 1:
				return fmt.Sprintf("For %s, I recommend %s, %s. %s Does this interest you?",
					entity.Category, dests[0].Name, dests[0].State, dests[0].Overview)
			case 2:
				return fmt.Sprintf("For %s, I have %s, %s and %s, %s. Would you like to hear more about either of these?",
					entity.Category, dests[0].Name, dests[0].State, dests[1].Name, dests[1].State)
			default:
				if len(dests) > 0 {
					return fmt.Sprintf("For %s, I can offer %s. Which one sounds most appealing to you?",
						entity.Category, joinDisplayNames(dests))
				}
			}
		}
		return "I have several destinations in that category. Could you be more specific about what you're looking for?"

	case models.MethodAttribute:
		if entity.Attribute != nil && len(entity.DestinationIDs) > 0 {
			dests := resolveDestinations(entity.DestinationIDs, 3)
			attrDesc := attributeDescription(entity.Attribute.Value)
			if len(dests) == 1 {
				return fmt.Sprintf("For %s, %s, %s is perfect! %s Interested?",
					attrDesc, dests[0].Name, dests[0].State, dests[0].Overview)
			}
			if len(dests) > 0 {
				names := make([]string, len(dests))
				for i, d := range dests {
					names[i] = d.Name
				}
				return fmt.Sprintf("For %s, I recommend %s. Which would you like to explore?",
					attrDesc, strings.Join(names, ", "))
			}
		}
		return "I have a few options that match what you're looking for. Could you tell me more about your preferences?"

	case models.MethodComparison:
		if len(entity.DestinationIDs) >= 2 {
			dest1 := catalog.GetDestinationByID(entity.DestinationIDs[0])
			dest2 := catalog.GetDestinationByID(entity.DestinationIDs[1])
			if dest1 != nil && dest2 != nil {
				return fmt.Sprintf("%s %s - %s Meanwhile, %s %s - %s Which appeals to you more?",
					dest1.Name, strings.ToLower(dest1.Tagline), dest1.KeyFacts[0],
					dest2.Name, strings.ToLower(dest2.Tagline), dest2.KeyFacts[0])
			}
		}
		return "I'd be happy to compare destinations! Which two would you like me to compare?"

	case models.MethodExploration:
		explored := state.ExploredDestinations
		unexploredCount := 0
		for _, dest := range catalog.Destinations {
			if !containsString(explored, dest.ID) && dest.ID != state.SelectedDestination {
				unexploredCount++
			}
		}

		if unexploredCount == 0 {
			return "We've covered all our destinations! Which one interests you most? Or would you like me to recap the options?"
		}

		var suggested []models.Destination
		for _, id := range ExplorationSuggestions {
			if containsString(explored, id) {
				continue
			}
			if d := catalog.GetDestinationByID(id); d != nil {
				suggested = append(suggested, *d)
			}
		}

		if len(suggested) > 0 {
			return fmt.Sprintf("I can also show you %s. Or if you prefer, I can search by what matters most - beach, mountains, entertainment, or budget. What interests you?",
				joinDisplayNames(suggested))
		}

		return "I have destinations from coast to coast! Are you interested in beaches, mountains, cities, or something else?"
	}

	return "I have 11 amazing destinations across the country. Would you like to explore by location type, activities, or see what's most popular?"
}

func attributeDescription(value string) string {
	switch value {
	case "warm":
		return "warm weather"
	case "yearRound":
		return "year-round sunshine"
	case "seasonal":
		return "seasonal variety"
	case "skiing":
		return "skiing"
	case "golf":
		return "golf"
	case "surfing":
		return "surfing"
	}
	return value
}

func positiveConfirmationResponse(currentStep models.BookingStep) string {
	switch currentStep {
	case models.StepVerifyDetails:
		return "Perfect! Your details are confirmed. Now let's choose your destination."
	case models.StepSelectDestination:
		return "Excellent! Let me show you our properties in that destination."
	case models.StepChooseDates:
		return "Perfect! Those dates are confirmed. Let's schedule your property tour."
	case models.StepScheduleTour:
		return "Excellent! Your tour is scheduled. Your complete booking is confirmed!"
	}
	return "Great! Let's continue with your booking."
}

func questionResponse(topic string) string {
	switch topic {
	case "price":
		return "Our Cocoa Beach properties range from budget-friendly to premium. The Holiday Inn Express Cocoa offers great value, the Holiday Inn Express Cocoa Beach is mid-range with oceanfront access, and the Crowne Plaza Melbourne is our premium oceanfront option. All include the $100 cash back bonus after your property tour."
	case "amenities":
		return "Each property has unique amenities. The Cocoa Beach location has direct beach access and is near Ron Jon Surf Shop, the Crowne Plaza has a full-service spa and beachfront dining, and the Cocoa location is budget-friendly and near Kennedy Space Center. Which interests you most?"
	case "cancellation":
		return "You can cancel up to 48 hours before check-in for a full refund. The property tour is required to receive the $100 cash back bonus."
	}
	return "I'd be happy to help! What would you like to know more about?"
}

func contextualHelp(currentStep models.BookingStep) string {
	switch currentStep {
	case models.StepVerifyDetails:
		return "I need to verify your details. Please confirm your zip code and how many guests will be traveling. You can say 'yes that's correct' or provide corrections."
	case models.StepSelectDestination:
		return "Where would you like to vacation? I have Orlando as your default, but you can explore other destinations. Try saying 'tell me about beach destinations' or 'I want to go to Las Vegas'."
	case models.StepChooseDates:
		return "When would you like to travel? You can say a date like 'next Friday' or 'March 15th'."
	case models.StepPropertyMatching:
		return "I'm asking you a few questions to find the perfect property for you. Please answer with your preferences."
	case models.StepScheduleTour:
		return "What time works for your property tour? You can say 'morning', 'afternoon', or a specific time like '2 PM'."
	}
	return "I'm here to help you book your vacation. What would you like to do next?"
}

func resolveDestinations(ids []string, max int) []models.Destination {
	if len(ids) > max {
		ids = ids[:max]
	}
	var dests []models.Destination
	for _, id := range ids {
		if d := catalog.GetDestinationByID(id); d != nil {
			dests = append(dests, *d)
		}
	}
	return dests
}

func joinDisplayNames(dests []models.Destination) string {
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = d.DisplayName()
	}
	return strings.Join(names, ", ")
}
