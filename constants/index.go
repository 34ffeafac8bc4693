package constants

// Generic API error messages, in the language of the product.
const (
	ERROR_INTERNAL_ERROR     = "Une erreur interne est survenue"
	MISSING_LOGIN_INPUT      = "Email et mot de passe requis"
	INVALID_EMAIL            = "Email inconnu"
	INVALID_PASSWORD         = "Mot de passe incorrect"
	ACCOUNT_NOT_ACTIVE       = "Compte désactivé"
	DATA_INPUT_IS_NOT_NUMBER = "Le paramètre doit être un nombre"
	RESTAURANT_NOT_FOUND     = "Restaurant introuvable"
	MENU_UNAVAILABLE         = "Le menu n'est pas encore disponible"
)

// Statuts de commande (wire values, shared with the SPA)
const (
	ORDER_STATUS_NEW       = "nouvelle"
	ORDER_STATUS_PREPARING = "en_cours"
	ORDER_STATUS_READY     = "prete"
	ORDER_STATUS_DELIVERED = "livree"
	ORDER_STATUS_CANCELLED = "annulee"
)

var ORDER_STATUSES = []string{
	ORDER_STATUS_NEW,
	ORDER_STATUS_PREPARING,
	ORDER_STATUS_READY,
	ORDER_STATUS_DELIVERED,
	ORDER_STATUS_CANCELLED,
}

// Types de commande
const (
	ORDER_TYPE_ON_SITE  = "sur_place"
	ORDER_TYPE_TAKEAWAY = "emporter"
	ORDER_TYPE_DELIVERY = "livraison"
)

var ORDER_TYPES = []string{
	ORDER_TYPE_ON_SITE,
	ORDER_TYPE_TAKEAWAY,
	ORDER_TYPE_DELIVERY,
}

// Human labels used in the WhatsApp message and the type breakdown.
var ORDER_TYPE_LABELS = map[string]string{
	ORDER_TYPE_ON_SITE:  "Sur place",
	ORDER_TYPE_TAKEAWAY: "À emporter",
	ORDER_TYPE_DELIVERY: "Livraison",
}

// Périodes de statistiques
const (
	STATS_PERIOD_7D  = "7j"
	STATS_PERIOD_30D = "30j"
	STATS_PERIOD_12M = "12m"
)
