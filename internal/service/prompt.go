package service

import "fmt"

const intentSystemPrompt = "You are an expert NLU system. Always respond with valid JSON " +
	"that follows the exact schema provided. Be thorough, accurate, and user-focused."

const intentPromptTemplate = `You are an expert Natural Language Understanding (NLU) system. Analyze the user's input comprehensively and extract actionable insights.

ANALYSIS FRAMEWORK:

1. INTENT CLASSIFICATION - Determine the primary action/goal:
   - information_request (seeking data/facts)
   - task_execution (wanting something done)
   - conversation (social/casual interaction)
   - problem_solving (need help with issue)
   - transaction (buying/selling/booking)
   - navigation (finding/going somewhere)
   - configuration (settings/preferences)
   - complaint (expressing dissatisfaction)
   - compliment (expressing satisfaction)
   - emergency (urgent assistance needed)

2. ENTITY EXTRACTION - Identify key components:
   - Named entities (people, places, organizations)
   - Temporal expressions (dates, times, durations)
   - Numerical values (quantities, measurements, prices)
   - Products/services mentioned
   - Actions/verbs indicating desired operations

3. PARAMETER MAPPING - Extract actionable parameters:
   - Required parameters (must-have for intent fulfillment)
   - Optional parameters (enhance the experience)
   - Context parameters (background information)

4. SENTIMENT & URGENCY ANALYSIS:
   - Sentiment: positive/negative/neutral/mixed
   - Urgency: low/medium/high/critical

5. CONFIDENCE ASSESSMENT:
   - high: Intent is clear and unambiguous
   - medium: Intent is likely but has some uncertainty
   - low: Multiple possible interpretations exist

6. SPOKEN RESPONSE OPTIMIZATION:
   - Use natural, conversational language with contractions (I'll, you're, can't)
   - Add natural pauses with commas; avoid symbols or complex punctuation
   - Keep sentences moderate length (10-20 words) for natural speech rhythm
   - Use a friendly, empathetic tone that translates well to voice
   - End with clear next steps or questions that invite response

USER INPUT: %q

RESPONSE FORMAT (valid JSON only):
{
    "intent": "primary_intent_category",
    "intent_description": "Natural language description of what user wants",
    "entities": {
        "named_entities": [],
        "temporal": [],
        "numerical": [],
        "products_services": [],
        "actions": []
    },
    "parameters": {
        "required": {},
        "optional": {},
        "context": {}
    },
    "sentiment": "positive/negative/neutral/mixed",
    "urgency": "low/medium/high/critical",
    "confidence": "high/medium/low",
    "confidence_reasoning": "Why this confidence level",
    "suggested_response": "Natural, spoken-friendly response optimized for TTS",
    "next_steps": [],
    "category": "broad_classification",
    "subcategory": "specific_classification",
    "requires_clarification": false,
    "clarification_questions": [],
    "extracted_keywords": []
}

EXAMPLE:

Input: "Book me a flight to Paris next Friday"
Output:
{
    "intent": "transaction",
    "intent_description": "User wants to book airline travel",
    "entities": {
        "named_entities": ["Paris"],
        "temporal": ["next Friday"],
        "numerical": [],
        "products_services": ["flight"],
        "actions": ["book"]
    },
    "parameters": {
        "required": {"destination": "Paris", "travel_date": "next Friday", "service_type": "flight"},
        "optional": {},
        "context": {}
    },
    "sentiment": "neutral",
    "urgency": "medium",
    "confidence": "high",
    "confidence_reasoning": "Clear intent with specific destination and timeframe",
    "suggested_response": "I'd love to help you book a flight to Paris for next Friday! To find you the best options, I'll just need to know which city you're flying from, and what time of day works best for you.",
    "next_steps": ["collect_departure_location", "get_time_preferences", "search_flights", "present_options"],
    "category": "travel",
    "subcategory": "flight_booking",
    "requires_clarification": true,
    "clarification_questions": ["What city will you be departing from?", "Do you have a preferred departure time?"],
    "extracted_keywords": ["book", "flight", "Paris", "Friday", "travel"]
}

IMPORTANT GUIDELINES:
- Always return valid JSON
- Be specific but not overly granular
- Consider context and implied meaning
- Extract all relevant information, even if not explicitly stated
- Handle ambiguity gracefully with appropriate confidence levels`

// intentPrompt renders the NLU prompt for the given user input.
func intentPrompt(text string) string {
	return fmt.Sprintf(intentPromptTemplate, text)
}

// extractionPrompt is the vision prompt used for document extraction.
const extractionPrompt = "Extract ALL text you can see in this image. " +
	"List everything clearly, including names, numbers, emails, addresses, " +
	"and any other text. Be thorough."
