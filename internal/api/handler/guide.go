package handler

import (
	"encoding/json"
	"net/http"

	"github.com/opsvue/performance-coach-api/pkg/log"
)

// GrowStage is one step of the GROW coaching conversation model
type GrowStage struct {
	Letter  string   `json:"letter"`
	Name    string   `json:"name"`
	Focus   string   `json:"focus"`
	Prompts []string `json:"prompts"`
}

// TenureCoachingEntry describes how to coach colleagues within a tenure band
type TenureCoachingEntry struct {
	Band   string   `json:"band"`
	Months string   `json:"months"`
	Focus  []string `json:"focus"`
}

// MetricGuideEntry explains one metric to managers
type MetricGuideEntry struct {
	Metric         string `json:"metric"`
	WhatItMeasures string `json:"what_it_measures"`
	WhyItMatters   string `json:"why_it_matters"`
	HowToImprove   string `json:"how_to_improve"`
}

// ConversationTemplate is a ready-made opening for a 1:1 scenario
type ConversationTemplate struct {
	Scenario string `json:"scenario"`
	Template string `json:"template"`
}

// CoachingGuide is the static manager training content
type CoachingGuide struct {
	GrowModel      []GrowStage            `json:"grow_model"`
	TenureCoaching []TenureCoachingEntry  `json:"tenure_coaching"`
	MetricGuide    []MetricGuideEntry     `json:"metric_guide"`
	Templates      []ConversationTemplate `json:"conversation_templates"`
	Dos            []string               `json:"dos"`
	Donts          []string               `json:"donts"`
	DashboardTips  []string               `json:"dashboard_tips"`
}

var coachingGuide = CoachingGuide{
	GrowModel: []GrowStage{
		{
			Letter: "G", Name: "Goal", Focus: "What do you want to achieve?",
			Prompts: []string{
				"What would success look like for you this month?",
				"Where do you want to be with your quality scores?",
			},
		},
		{
			Letter: "R", Name: "Reality", Focus: "Where are you now?",
			Prompts: []string{
				"Let's look at your current performance data together",
				"What's been working well? What's been challenging?",
			},
		},
		{
			Letter: "O", Name: "Options", Focus: "What could you do?",
			Prompts: []string{
				"What approaches have you tried?",
				"What else might work?",
			},
		},
		{
			Letter: "W", Name: "Will", Focus: "What will you do?",
			Prompts: []string{
				"What specific actions will you take?",
				"When will you start? How will we measure progress?",
			},
		},
	},
	TenureCoaching: []TenureCoachingEntry{
		{
			Band: "Attaining Foundation", Months: "0-3 months",
			Focus: []string{
				"Focus on foundational skills and confidence",
				"Provide frequent feedback and encouragement",
				"Pair with experienced mentors",
				"Celebrate small wins",
			},
		},
		{
			Band: "Attaining Competence", Months: "4-12 months",
			Focus: []string{
				"Build independence gradually",
				"Focus on handling complex scenarios",
				"Introduce stretch targets",
				"Encourage peer learning",
			},
		},
		{
			Band: "Maintaining Competence", Months: "13-24 months",
			Focus: []string{
				"Focus on consistency and reliability",
				"Address any emerging bad habits",
				"Develop specialist skills",
				"Prepare for mentoring role",
			},
		},
		{
			Band: "Maintaining Excellence", Months: "25+ months",
			Focus: []string{
				"Focus on leadership and mentoring",
				"Involve in process improvement",
				"Stretch with challenging cases",
				"Recognise expertise publicly",
			},
		},
	},
	MetricGuide: []MetricGuideEntry{
		{
			Metric:         "Quality Score",
			WhatItMeasures: "Overall quality of customer interactions based on QA evaluation",
			WhyItMatters:   "Ensures consistent, compliant service delivery",
			HowToImprove:   "Listen to call recordings, identify specific areas, practice techniques",
		},
		{
			Metric:         "FCR (First Call Resolution)",
			WhatItMeasures: "Percentage of calls resolved without customer needing to call back",
			WhyItMatters:   "Higher FCR = better customer experience and operational efficiency",
			HowToImprove:   "Thorough needs analysis, complete resolution, clear next steps",
		},
		{
			Metric:         "CSAT",
			WhatItMeasures: "Customer satisfaction rating from post-call surveys",
			WhyItMatters:   "Direct measure of customer perception and loyalty",
			HowToImprove:   "Empathy, ownership, setting expectations, following up",
		},
		{
			Metric:         "AHT (Average Handle Time)",
			WhatItMeasures: "Average total time spent on calls including hold and wrap",
			WhyItMatters:   "Balances efficiency with quality - not just about being fast",
			HowToImprove:   "System proficiency, call control techniques, efficient documentation",
		},
		{
			Metric:         "NPS",
			WhatItMeasures: "Customer likelihood to recommend (scale -100 to +100)",
			WhyItMatters:   "Predicts customer loyalty and business growth",
			HowToImprove:   "Exceed expectations, personal connection, memorable service",
		},
	},
	Templates: []ConversationTemplate{
		{
			Scenario: "Opening a performance conversation",
			Template: "Thanks for meeting with me. I wanted to check in on how things are going and look at some of your recent performance data together. How are you feeling about work at the moment?",
		},
		{
			Scenario: "Addressing concerns",
			Template: "I've noticed some changes in your [metric] recently. I wanted to understand what might be going on and see how I can support you.",
		},
		{
			Scenario: "Quality concerns",
			Template: "Your quality score has dropped to [X%] this month. Let's listen to a couple of calls together and identify what's happening. What do you think might be contributing to this?",
		},
		{
			Scenario: "FCR improvements",
			Template: "Great news - your FCR has improved by [X%]! What have you been doing differently? This is something we could share with the team.",
		},
		{
			Scenario: "Setting action items",
			Template: "Based on our conversation, let's agree on 2-3 specific things you'll focus on before our next 1:1. What feels most important to you?",
		},
		{
			Scenario: "Closing strong",
			Template: "Thanks for being open about this. I'm confident you can turn this around, and I'm here to support you. Is there anything else you need from me?",
		},
	},
	Dos: []string{
		"Be specific: use data and examples, not generalisations",
		"Listen first: understand their perspective before offering solutions",
		"Focus forward: what can we change, not what went wrong",
		"Recognise effort: acknowledge improvements, even small ones",
		"Follow up: check in on agreed actions",
		"Document: keep records of coaching conversations",
	},
	Donts: []string{
		"Don't surprise: address issues in 1:1s, not in public",
		"Don't overload: focus on 1-2 priority areas",
		"Don't compare to others: compare to their own targets",
		"Don't just tell: ask questions to guide self-discovery",
		"Don't ignore context: consider tenure, circumstances, workload",
		"Don't skip praise: balanced feedback is more effective",
	},
	DashboardTips: []string{
		"Before the 1:1: review the colleague's dashboard page",
		"Identify patterns: look at trends, not just single months",
		"Check objectives: are they on track for yearly goals?",
		"Use AI insights: generate coaching suggestions",
		"During the 1:1: share screen to review data together",
		"After the 1:1: document agreed actions",
	},
}

// metricDefinitions are the tooltip texts shown next to each dashboard metric
var metricDefinitions = map[string]string{
	"Quality":           "Overall quality score from QA evaluations. Measures compliance, accuracy, and customer service standards on calls.",
	"FCR":               "First Call Resolution - percentage of calls resolved without the customer needing to call back. Higher is better.",
	"CSAT":              "Customer Satisfaction Score - rating from post-call surveys (1-100%). Measures how satisfied customers are with the service.",
	"AHT":               "Average Handle Time - total time spent on calls including talk time, hold time, and after-call work. Lower is generally better, but not at expense of quality.",
	"NPS":               "Net Promoter Score (-100 to +100) - measures customer loyalty by asking how likely they are to recommend us. Above 0 is good, above 50 is excellent.",
	"Adherence":         "Schedule Adherence - percentage of time the colleague follows their assigned schedule. Shows reliability and availability.",
	"Hold_Time":         "Average time customers are placed on hold during calls. Lower is better - long holds frustrate customers.",
	"ACW":               "After Call Work - time spent on wrap-up tasks after the call ends (notes, admin). Should be efficient but thorough.",
	"Shrinkage":         "Time away from phones for non-productive activities (breaks, meetings, training). Lower percentage means more availability.",
	"Transfer":          "Percentage of calls transferred to another team/colleague. Lower is better - indicates ability to resolve issues.",
	"Repeat_Call":       "Percentage of customers who call back within 7 days. Lower is better - indicates issues being fully resolved.",
	"Complaint_Rate":    "Number of formal complaints per 1000 calls. Lower is better - indicates quality of service.",
	"Critical_Errors":   "Serious compliance or quality failures requiring immediate attention. Should always be zero.",
	"Sentiment":         "AI-analysed customer sentiment from call recordings. Ranges from -1 (negative) to +1 (positive).",
	"Call_Volume":       "Total number of calls handled. Used to understand workload and capacity.",
	"Performance_Score": "Overall weighted score (0-100) combining Quality (25%), FCR (20%), CSAT (20%), AHT (15%), Adherence (10%), and Compliance (10%).",
}

// GetCoachingGuide serves the static manager training content
func GetCoachingGuide() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(coachingGuide); err != nil {
			logger.WithError(err).Error("guide: failed to encode coaching guide")
		}
	})
}

// GetMetricDefinitions serves the metric tooltip map
func GetMetricDefinitions() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metricDefinitions); err != nil {
			logger.WithError(err).Error("guide: failed to encode metric definitions")
		}
	})
}
