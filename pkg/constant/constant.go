package constant

const (
	// TokenTypeBearer is the token_type literal returned with every token pair.
	TokenTypeBearer = "Bearer"

	// Token purposes embedded in the "type" claim. A refresh token must never
	// authenticate a business request and an access token must never mint new
	// tokens.
	TokenPurposeAccess  = "access"
	TokenPurposeRefresh = "refresh"

	// Transaction and category types.
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)
