package domain

// AdAccount representa uma conta de anúncios configurada para o pipeline.
// Cada conta possui sua própria tabela no banco e seu próprio arquivo de
// exportação; a lista é montada pela configuração e não muda durante a execução.
type AdAccount struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TableName      string `json:"table_name"`
	ExportFilename string `json:"export_filename"`
}
