package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nanoink/sistema-inspecao-incendio/internal/config"
	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
)

// Seed importer for the classification and requirement catalogs. Expects a
// workbook with sheets named after the tables they feed:
//
//	cnae_catalogo         cnae | divisao | ocupacao_uso | descricao | carga_incendio
//	altura_ref            tipo | denominacao | h_min_m | h_max_m
//	exigencias_seguranca  codigo | nome | categoria | subcategoria | ordem
//	exigencias_criterios  codigo | divisao | area_min | area_max | altura_tipo | observacao
//
// Missing sheets are skipped so partial workbooks can be re-imported.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <catalog.xlsx>", os.Args[0])
	}

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	cfg := config.Load()
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Cannot open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}

	ctx := context.Background()
	catalogRepo := repository.NewPostgresCatalogRepository(db)
	requirementsRepo := repository.NewPostgresRequirementsRepository(db)

	if rows, ok := sheetRows(f, "cnae_catalogo"); ok {
		if err := importClassifications(ctx, catalogRepo, rows); err != nil {
			log.Fatalf("Failed to import cnae_catalogo: %v", err)
		}
	}
	if rows, ok := sheetRows(f, "altura_ref"); ok {
		if err := importHeightReferences(ctx, catalogRepo, rows); err != nil {
			log.Fatalf("Failed to import altura_ref: %v", err)
		}
	}

	var codeToID map[string]string
	if rows, ok := sheetRows(f, "exigencias_seguranca"); ok {
		codeToID, err = importDefinitions(ctx, requirementsRepo, rows)
		if err != nil {
			log.Fatalf("Failed to import exigencias_seguranca: %v", err)
		}
	}
	if rows, ok := sheetRows(f, "exigencias_criterios"); ok {
		if codeToID == nil {
			codeToID, err = loadDefinitionIDs(ctx, requirementsRepo)
			if err != nil {
				log.Fatalf("Failed to load requirement definitions: %v", err)
			}
		}
		if err := importCriteria(ctx, requirementsRepo, rows, codeToID); err != nil {
			log.Fatalf("Failed to import exigencias_criterios: %v", err)
		}
	}

	fmt.Println("Catalog import completed")
}

// sheetRows returns the data rows of a sheet, header stripped.
func sheetRows(f *excelize.File, name string) ([][]string, bool) {
	rows, err := f.GetRows(name)
	if err != nil || len(rows) < 2 {
		return nil, false
	}
	return rows[1:], true
}

func importClassifications(ctx context.Context, repo repository.CatalogRepository, rows [][]string) error {
	items := make([]domain.ActivityClassification, 0, len(rows))
	for _, row := range rows {
		cnae := cell(row, 0)
		divisao := cell(row, 1)
		if cnae == "" || divisao == "" {
			continue
		}
		items = append(items, domain.ActivityClassification{
			CNAE:              cnae,
			Grupo:             domain.GroupFromDivision(divisao),
			Divisao:           divisao,
			OcupacaoUso:       cell(row, 2),
			Descricao:         cell(row, 3),
			CargaIncendioMJM2: cellFloat(row, 4),
		})
	}
	if err := repo.ReplaceActivityClassifications(ctx, items); err != nil {
		return err
	}
	fmt.Printf("cnae_catalogo: %d rows\n", len(items))
	return nil
}

func importHeightReferences(ctx context.Context, repo repository.CatalogRepository, rows [][]string) error {
	items := make([]domain.HeightReference, 0, len(rows))
	for _, row := range rows {
		tipo := cell(row, 0)
		if tipo == "" {
			continue
		}
		items = append(items, domain.HeightReference{
			Tipo:        tipo,
			Denominacao: cell(row, 1),
			HMinM:       cellFloatPtr(row, 2),
			HMaxM:       cellFloatPtr(row, 3),
		})
	}
	if err := repo.UpsertHeightReferences(ctx, items); err != nil {
		return err
	}
	fmt.Printf("altura_ref: %d rows\n", len(items))
	return nil
}

func importDefinitions(ctx context.Context, repo repository.RequirementsRepository, rows [][]string) (map[string]string, error) {
	codeToID := make(map[string]string, len(rows))
	count := 0
	for _, row := range rows {
		codigo := cell(row, 0)
		nome := cell(row, 1)
		if codigo == "" || nome == "" {
			continue
		}
		def := &domain.RequirementDefinition{
			ID:           uuid.NewString(),
			Codigo:       codigo,
			Nome:         nome,
			Categoria:    cell(row, 2),
			Subcategoria: cellPtr(row, 3),
			Ordem:        int(cellFloat(row, 4)),
		}
		if err := repo.UpsertDefinition(ctx, def); err != nil {
			return nil, err
		}
		codeToID[def.Codigo] = def.ID
		count++
	}
	fmt.Printf("exigencias_seguranca: %d rows\n", count)
	return codeToID, nil
}

func importCriteria(ctx context.Context, repo repository.RequirementsRepository, rows [][]string, codeToID map[string]string) error {
	count := 0
	for _, row := range rows {
		codigo := cell(row, 0)
		id, ok := codeToID[codigo]
		if !ok {
			return fmt.Errorf("criteria row references unknown codigo %q", codigo)
		}
		criterion := &domain.RequirementCriterion{
			ID:          uuid.NewString(),
			ExigenciaID: id,
			Divisao:     cellPtr(row, 1),
			AreaMin:     cellFloatPtr(row, 2),
			AreaMax:     cellFloatPtr(row, 3),
			AlturaTipo:  cellPtr(row, 4),
			Observacao:  cellPtr(row, 5),
		}
		if err := repo.InsertCriterion(ctx, criterion); err != nil {
			return err
		}
		count++
	}
	fmt.Printf("exigencias_criterios: %d rows\n", count)
	return nil
}

func loadDefinitionIDs(ctx context.Context, repo repository.RequirementsRepository) (map[string]string, error) {
	defs, err := repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	codeToID := make(map[string]string, len(defs))
	for _, def := range defs {
		codeToID[def.Codigo] = def.ID
	}
	return codeToID, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellPtr(row []string, i int) *string {
	v := cell(row, i)
	if v == "" {
		return nil
	}
	return &v
}

func cellFloat(row []string, i int) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(cell(row, i), ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

func cellFloatPtr(row []string, i int) *float64 {
	s := cell(row, i)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}
