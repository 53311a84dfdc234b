package constants

const (
	ROLE          = "role"
	ROLE_ADMIN    = "ADMIN"
	ROLE_OPERATOR = "OPERATOR"
)

// Order statuses follow the customer-facing tracking labels.
const (
	ORDER_RECEIVED  = "ricevuto"
	ORDER_PREPARING = "in_preparazione"
	ORDER_READY     = "pronto"
	ORDER_DELIVERED = "consegnato"
	ORDER_CANCELLED = "annullato"
)

const (
	FULFILLMENT_PICKUP   = "asporto"
	FULFILLMENT_DELIVERY = "consegna"
)

// Ledger entry reasons.
const (
	LEDGER_ORDER         = "ordine"
	LEDGER_GIFT_SENT     = "regalo_inviato"
	LEDGER_GIFT_RECEIVED = "regalo_ricevuto"
	LEDGER_REDEMPTION    = "riscatto"
)

// Redemption request statuses.
const (
	REDEMPTION_PENDING   = "in_attesa"
	REDEMPTION_CONFIRMED = "confermato"
	REDEMPTION_COMPLETED = "completato"
)

const (
	PIZZERIA_ACTIVE   = "attivo"
	PIZZERIA_INACTIVE = "disattivo"
)

// Subscription plans with their monthly price in EUR.
const (
	PLAN_BASE       = "BASE"
	PLAN_EARLY_BIRD = "EARLY_BIRD"
	PLAN_PRO        = "PRO"
	PLAN_PREMIUM    = "PREMIUM"
)

const (
	TIME_BAND_MORNING   = "mattina"
	TIME_BAND_AFTERNOON = "pomeriggio"
	TIME_BAND_EVENING   = "sera"
)

// Response messages.
const (
	ERROR_INPUT                = "Dati di input non validi"
	ERROR_CREATE               = "Errore durante la creazione"
	ERROR_EDIT                 = "Errore durante la modifica"
	ERROR_INTERNAL_ERROR       = "Errore interno del server"
	ERROR_PARSE_DATA_TO_LOCALS = "Errore di elaborazione della richiesta"
	NOT_FOUND_RECORDS          = "Record non trovato"
	DATA_INPUT_IS_NOT_NUMBER   = "Il parametro deve essere un numero"
	MISSING_LOGIN_INPUT        = "Telefono o password mancanti"
	INVALID_PASSWORD           = "Password non valida"
	ACCOUNT_NOT_ACTIVE         = "Account disattivato"
	ACCOUNT_NOT_PERMISSION     = "Operazione riservata all'operatore"
	SLOT_UNAVAILABLE           = "Fascia oraria al completo"
	INVALID_TRANSITION         = "Transizione di stato non consentita"
	INSUFFICIENT_BALANCE       = "Punti insufficienti"
	TIER_LOCKED                = "Livello non ancora sbloccato"
	RECIPIENT_NOT_ELIGIBLE     = "Il destinatario deve aver già fatto almeno 1 ordine"
	SELF_TRANSFER              = "Mittente e destinatario devono essere diversi"
	INVALID_AMOUNT             = "Quantità di punti non valida"
	ALREADY_REVIEWED           = "Ordine già recensito"
	ORDER_NOT_DELIVERED        = "L'ordine non è ancora stato consegnato"
)
