package constants

// Echo context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserName  = "user_name"
	ContextKeyRequestID = "request_id"
	ContextKeyClaims    = "claims"
)

// Upload folders inside the file store
const (
	FolderLoadingReceipts   = "comprovantes/carga"
	FolderUnloadingReceipts = "comprovantes/descarga"
	FolderFuelReceipts      = "comprovantes/abastecimento"
	FolderSupplyReceipts    = "comprovantes/insumos"
	FolderPaymentProofs     = "pagamentos"
)
