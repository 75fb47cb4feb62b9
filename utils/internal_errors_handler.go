package utils

import "fmt"

const (
	CONTACTS_INVALID_REQUEST_DATA = iota + 1
	INVALID_CONTACT_ID_FORMAT
	CANNOT_CONNECT_TO_MONGODB
	CANNOT_INSERT_CONTACT_TO_MONGODB
	CANNOT_FIND_CONTACTS_IN_MONGODB
	CANNOT_UPDATE_CONTACT_IN_MONGODB
	COMPANIES_INVALID_REQUEST_DATA
	INVALID_COMPANY_ID_FORMAT
	CANNOT_INSERT_COMPANY_TO_MONGODB
	CANNOT_FIND_COMPANIES_IN_MONGODB
	CANNOT_UPDATE_COMPANY_IN_MONGODB
	CASES_INVALID_REQUEST_DATA
	INVALID_CASE_ID_FORMAT
	CANNOT_INSERT_CASE_TO_MONGODB
	CANNOT_FIND_CASES_IN_MONGODB
	CANNOT_UPDATE_CASE_IN_MONGODB
	EVENTS_INVALID_REQUEST_DATA
	INVALID_EVENT_ID_FORMAT
	CANNOT_INSERT_EVENT_TO_MONGODB
	CANNOT_FIND_EVENTS_IN_MONGODB
	CANNOT_UPDATE_EVENT_IN_MONGODB
	DOCUMENTS_INVALID_REQUEST_DATA
	INVALID_DOCUMENT_ID_FORMAT
	CANNOT_INSERT_DOCUMENT_TO_MONGODB
	CANNOT_FIND_DOCUMENTS_IN_MONGODB
	CANNOT_UPDATE_DOCUMENT_IN_MONGODB
	MEDIA_CONTACTS_INVALID_REQUEST_DATA
	INVALID_MEDIA_CONTACT_ID_FORMAT
	CANNOT_INSERT_MEDIA_CONTACT_TO_MONGODB
	CANNOT_FIND_MEDIA_CONTACTS_IN_MONGODB
	CANNOT_UPDATE_MEDIA_CONTACT_IN_MONGODB
	CANNOT_FIND_OPPORTUNITIES_IN_MONGODB
	INVALID_OPPORTUNITY_ID_FORMAT
	CANNOT_UPDATE_OPPORTUNITY_IN_MONGODB
	CANNOT_FIND_MEDICATIONS_IN_MONGODB
	CANNOT_FIND_AUDIT_LOGS_IN_MONGODB
	CANNOT_CONNECT_TO_REDIS
	CANNOT_CONNECT_TO_MYSQL
	CANNOT_CONNECT_TO_HUBSPOT
	CANNOT_CONNECT_TO_GOOGLE
	CANNOT_CONNECT_TO_LLM
	CANNOT_CONNECT_TO_APIFY
	CANNOT_VERIFY_TURNSTILE_TOKEN
	IMPORTS_INVALID_REQUEST_DATA
	CANNOT_FIND_IMPORT_PROGRESS
)

func SendInternalError(internalErrorCode int) string {
	return fmt.Sprintf("Ocurrió un error interno en el servidor. Por favor, inténtelo de nuevo más tarde (Cod: %d)", internalErrorCode)
}
