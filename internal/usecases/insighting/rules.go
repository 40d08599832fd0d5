package insighting

import "strings"

// Objective é o objetivo canônico de campanha.
// Nomes legados do Graph API são convertidos pela tabela de aliases.
type Objective string

const (
	ObjectiveUnknown      Objective = "UNKNOWN"
	ObjectiveLeads        Objective = "OUTCOME_LEADS"
	ObjectiveSales        Objective = "OUTCOME_SALES"
	ObjectiveEngagement   Objective = "OUTCOME_ENGAGEMENT"
	ObjectiveTraffic      Objective = "OUTCOME_TRAFFIC"
	ObjectiveAwareness    Objective = "OUTCOME_AWARENESS"
	ObjectiveAppPromotion Objective = "OUTCOME_APP_PROMOTION"
	ObjectiveMessages     Objective = "MESSAGES"
)

var objectiveAliases = map[string]Objective{
	"OUTCOME_LEADS":         ObjectiveLeads,
	"LEAD_GENERATION":       ObjectiveLeads,
	"OUTCOME_SALES":         ObjectiveSales,
	"CONVERSIONS":           ObjectiveSales,
	"PRODUCT_CATALOG_SALES": ObjectiveSales,
	"OUTCOME_ENGAGEMENT":    ObjectiveEngagement,
	"POST_ENGAGEMENT":       ObjectiveEngagement,
	"PAGE_LIKES":            ObjectiveEngagement,
	"EVENT_RESPONSES":       ObjectiveEngagement,
	"OUTCOME_TRAFFIC":       ObjectiveTraffic,
	"LINK_CLICKS":           ObjectiveTraffic,
	"OUTCOME_AWARENESS":     ObjectiveAwareness,
	"BRAND_AWARENESS":       ObjectiveAwareness,
	"REACH":                 ObjectiveAwareness,
	"VIDEO_VIEWS":           ObjectiveAwareness,
	"OUTCOME_APP_PROMOTION": ObjectiveAppPromotion,
	"APP_INSTALLS":          ObjectiveAppPromotion,
	"MESSAGES":              ObjectiveMessages,
}

// CanonicalObjective normaliza o objetivo; valores desconhecidos viram ObjectiveUnknown
func CanonicalObjective(raw string) Objective {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if objective, ok := objectiveAliases[key]; ok {
		return objective
	}
	return ObjectiveUnknown
}

// OptimizationGoal é a meta de otimização canônica do conjunto de anúncios.
// Metas não mapeadas mantêm o valor em minúsculas e formam seu próprio grupo.
type OptimizationGoal string

const (
	// em maiúsculas: CanonicalGoal sempre devolve minúsculas, então nenhuma meta real colide
	GoalUnknown            OptimizationGoal = "UNKNOWN"
	GoalOffsiteConversions OptimizationGoal = "offsite_conversions"
	GoalLeadGeneration     OptimizationGoal = "lead_generation"
	GoalConversations      OptimizationGoal = "conversations"
	GoalLinkClicks         OptimizationGoal = "link_clicks"
	GoalLandingPageViews   OptimizationGoal = "landing_page_views"
	GoalPostEngagement     OptimizationGoal = "post_engagement"
	GoalThruplay           OptimizationGoal = "thruplay"
	GoalPageLikes          OptimizationGoal = "page_likes"
	GoalAppInstalls        OptimizationGoal = "app_installs"
	GoalReach              OptimizationGoal = "reach"
	GoalImpressions        OptimizationGoal = "impressions"
)

var goalAliases = map[string]OptimizationGoal{
	"offsite_conversions":               GoalOffsiteConversions,
	"conversions":                       GoalOffsiteConversions,
	"value":                             GoalOffsiteConversions,
	"lead_generation":                   GoalLeadGeneration,
	"quality_lead":                      GoalLeadGeneration,
	"leads":                             GoalLeadGeneration,
	"conversations":                     GoalConversations,
	"replies":                           GoalConversations,
	"messaging_conversations":           GoalConversations,
	"link_clicks":                       GoalLinkClicks,
	"landing_page_views":                GoalLandingPageViews,
	"post_engagement":                   GoalPostEngagement,
	"engaged_users":                     GoalPostEngagement,
	"thruplay":                          GoalThruplay,
	"video_views":                       GoalThruplay,
	"two_second_continuous_video_views": GoalThruplay,
	"page_likes":                        GoalPageLikes,
	"app_installs":                      GoalAppInstalls,
	"reach":                             GoalReach,
	"ad_recall_lift":                    GoalReach,
	"impressions":                       GoalImpressions,
}

// tipos de ação que contam como resultado para cada meta, em ordem de prioridade
var goalActionTypes = map[OptimizationGoal][]string{
	GoalOffsiteConversions: {"offsite_conversion.fb_pixel_purchase", "purchase", "omni_purchase", "offsite_conversion.fb_pixel_lead", "lead"},
	GoalLeadGeneration:     {"lead", "onsite_conversion.lead_grouped", "offsite_conversion.fb_pixel_lead"},
	GoalConversations:      {"onsite_conversion.messaging_conversation_started_7d", "onsite_conversion.total_messaging_connection"},
	GoalLinkClicks:         {"link_click"},
	GoalLandingPageViews:   {"landing_page_view"},
	GoalPostEngagement:     {"post_engagement", "page_engagement"},
	GoalThruplay:           {"video_view"},
	GoalPageLikes:          {"like"},
	GoalAppInstalls:        {"mobile_app_install", "app_install", "omni_app_install"},
}

// lista de fallback quando a meta não indica nenhum tipo com quantidade
var fallbackActionTypes = []string{
	"offsite_conversion.fb_pixel_purchase",
	"purchase",
	"lead",
	"onsite_conversion.lead_grouped",
	"onsite_conversion.messaging_conversation_started_7d",
	"landing_page_view",
	"link_click",
	"post_engagement",
	"video_view",
}

// tipos somados no total legado de leads
var leadActionTypes = map[string]struct{}{
	"lead":                           {},
	"onsite_conversion.lead_grouped": {},
	"leadgen_grouped":                {},
}

var actionLabels = map[string]string{
	"link_click":        "Link clicks",
	"landing_page_view": "Landing page views",

	"lead":                           "Leads",
	"onsite_conversion.lead_grouped": "On-Facebook leads",
	"leadgen_grouped":                "On-Facebook leads",

	// eventos do pixel
	"offsite_conversion.fb_pixel_lead":              "Website leads",
	"offsite_conversion.fb_pixel_purchase":          "Website purchases",
	"offsite_conversion.fb_pixel_add_to_cart":       "Website adds to cart",
	"offsite_conversion.fb_pixel_initiate_checkout": "Website checkouts initiated",

	"purchase":              "Purchases",
	"omni_purchase":         "Purchases",
	"add_to_cart":           "Adds to cart",
	"initiate_checkout":     "Checkouts initiated",
	"complete_registration": "Registrations completed",

	// mensagens
	"onsite_conversion.messaging_conversation_started_7d": "Messaging conversations started",
	"onsite_conversion.messaging_first_reply":             "New messaging contacts",
	"onsite_conversion.total_messaging_connection":        "Messaging connections",

	"post_engagement":             "Post engagements",
	"page_engagement":             "Page engagement",
	"post_reaction":               "Post reactions",
	"comment":                     "Post comments",
	"onsite_conversion.post_save": "Post saves",
	"like":                        "Page likes",
	"video_view":                  "Video views",

	"mobile_app_install": "App installs",
	"app_install":        "App installs",
	"omni_app_install":   "App installs",
}

// ResultSelection define como os tipos de ação de uma regra viram um único resultado.
// As únicas implementações são FirstOf e SumOf.
type ResultSelection interface {
	ActionTypes() []string
	Mode() string
	isResultSelection()
}

// FirstOf usa o primeiro tipo, na ordem, com quantidade positiva
type FirstOf []string

func (f FirstOf) ActionTypes() []string { return []string(f) }
func (FirstOf) Mode() string            { return "first" }
func (FirstOf) isResultSelection()      {}

// SumOf soma todos os tipos com quantidade positiva
type SumOf []string

func (s SumOf) ActionTypes() []string { return []string(s) }
func (SumOf) Mode() string            { return "sum" }
func (SumOf) isResultSelection()      {}

type ResultRule struct {
	Objective Objective
	Label     string
	Selection ResultSelection
}

// OUTCOME_AWARENESS não tem regra: o resultado é alcance, não uma ação
var objectiveRules = map[Objective]ResultRule{
	ObjectiveLeads: {
		Objective: ObjectiveLeads,
		Label:     "Leads",
		Selection: FirstOf{"lead", "onsite_conversion.lead_grouped", "offsite_conversion.fb_pixel_lead", "onsite_conversion.messaging_conversation_started_7d"},
	},
	ObjectiveSales: {
		Objective: ObjectiveSales,
		Label:     "Purchases",
		Selection: FirstOf{"offsite_conversion.fb_pixel_purchase", "purchase", "omni_purchase"},
	},
	ObjectiveEngagement: {
		Objective: ObjectiveEngagement,
		Label:     "Engagements",
		Selection: SumOf{"onsite_conversion.messaging_conversation_started_7d", "post_engagement", "like"},
	},
	ObjectiveTraffic: {
		Objective: ObjectiveTraffic,
		Label:     "Link clicks",
		Selection: FirstOf{"link_click", "landing_page_view"},
	},
	ObjectiveAppPromotion: {
		Objective: ObjectiveAppPromotion,
		Label:     "App installs",
		Selection: FirstOf{"mobile_app_install", "app_install", "omni_app_install"},
	},
	ObjectiveMessages: {
		Objective: ObjectiveMessages,
		Label:     "Messaging conversations started",
		Selection: FirstOf{"onsite_conversion.messaging_conversation_started_7d", "onsite_conversion.messaging_first_reply"},
	},
}

// ResolveObjectiveRule devolve a regra do objetivo, ou nil quando não existe
func ResolveObjectiveRule(rawObjective string) *ResultRule {
	rule, ok := objectiveRules[CanonicalObjective(rawObjective)]
	if !ok {
		return nil
	}
	return &rule
}
