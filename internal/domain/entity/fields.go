package entity

// Ids de campo del ERP que lee o escribe el hook.
const (
	FieldEntity   = "entity"
	FieldCustomer = "customer"

	FieldSalesOrderOppID = "custbody_scg_sf_opp_id"
	FieldSalesOrderLink  = "custbody_scg_sf_link"

	FieldTranSyncDateTime = "custbody_scg_sf_date_time"
	FieldTranFinTranRef   = "custbody_scg_sf_fin_tran_custrecord"
	FieldCreditedInFull   = "custbody_scg_credited_in_full"

	FieldCustomerCRMAccountID  = "custentity_scg_sf_account_id"
	FieldCustomerSubscribers   = "custentity_scg_no_subscribers"
	FieldCustomerOverdueBal    = "custentity_scg_sf_overdue_bal"
	FieldCustomerTotalInvoiced = "custentity_scg_sf_total_invcd"
	FieldCustomerTotalCredited = "custentity_scg_sf_total_cred"
	FieldCustomerTotalPaid     = "custentity_scg_sf_total_paid"
	FieldCustomerSyncDateTime  = "custentity_scg_sf_date_time"
)

// Sublistas y columnas de aplicación.
const (
	SublistApply  = "apply"
	SublistCredit = "credit"

	LineFieldApply      = "apply"
	LineFieldTranType   = "trantype"
	LineFieldInternalID = "internalid"
	LineFieldAmount     = "amount"
	LineFieldTotal      = "total"
)

// Preferencias de compañía con las URL base del CRM.
const (
	PrefCRMSandboxURL    = "custscript_scg_sf_sand_url"
	PrefCRMProductionURL = "custscript_scg_sf_prod_url"
)
