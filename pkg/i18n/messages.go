package i18n

// DefaultMessages returns built-in translations for all supported locales.
// These can be overridden by loading JSON files from a directory.
func DefaultMessages() map[Locale]map[string]string {
	return map[Locale]map[string]string{
		LocalePt: ptMessages,
		LocaleEn: enMessages,
	}
}

var ptMessages = map[string]string{
	// Common errors
	"error.not_found":         "Recurso não encontrado",
	"error.bad_request":       "Requisição inválida",
	"error.internal":          "Erro interno do servidor",
	"error.too_many_requests": "Muitas requisições. Tente novamente em instantes",
	"error.validation":        "Dados de entrada inválidos",

	// Reviews
	"review.not_found":             "Avaliação não encontrada",
	"review.invalid_id":            "ID de avaliação inválido",
	"review.field_required":        "'%s' é obrigatório.",
	"review.field_type":            "O campo '%s' deve ser do tipo texto.",
	"review.invalid_sentiment":     "O campo 'sentiment' deve ser 'positiva', 'negativa' ou 'neutra'.",
	"review.invalid_date":          "Formato de data inválido. Use YYYY-MM-DD.",
	"review.invalid_range":         "A data final deve ser igual ou posterior à data inicial.",
	"review.classification_failed": "A avaliação foi salva, mas a análise de sentimento falhou e está pendente.",
	"review.analysis_failed":       "Não foi possível analisar o sentimento da avaliação.",
	"review.analysis_not_stored":   "A avaliação foi salva, mas a análise de sentimento não pôde ser gravada e está pendente.",
	"review.analysis_exists":       "A avaliação já possui análise de sentimento.",

	// Rate limit
	"rate_limit.exceeded": "Limite de requisições excedido. Tente novamente em %d segundos",
}

var enMessages = map[string]string{
	// Common errors
	"error.not_found":         "Resource not found",
	"error.bad_request":       "Bad request",
	"error.internal":          "Internal server error",
	"error.too_many_requests": "Too many requests. Please try again later",
	"error.validation":        "Invalid input",

	// Reviews
	"review.not_found":             "Review not found",
	"review.invalid_id":            "Invalid review ID",
	"review.field_required":        "'%s' is required.",
	"review.field_type":            "Field '%s' must be a string.",
	"review.invalid_sentiment":     "Field 'sentiment' must be 'positiva', 'negativa' or 'neutra'.",
	"review.invalid_date":          "Invalid date format. Use YYYY-MM-DD.",
	"review.invalid_range":         "end_date must be on or after start_date.",
	"review.classification_failed": "The review was saved but sentiment analysis failed and is pending.",
	"review.analysis_failed":       "Sentiment analysis could not be completed.",
	"review.analysis_not_stored":   "The review was saved but its sentiment analysis could not be stored and is pending.",
	"review.analysis_exists":       "The review already has a sentiment analysis.",

	// Rate limit
	"rate_limit.exceeded": "Rate limit exceeded. Please try again in %d seconds",
}
