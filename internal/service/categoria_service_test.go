package service

import (
	"strings"
	"testing"

	"github.com/financas-app/financas-backend/internal/domain"
	"github.com/financas-app/financas-backend/internal/testutil"
)

func TestCreateCategoria_Success(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	categoria, err := categoriaService.CreateCategoria("Alimentação")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if categoria.Nome != "Alimentação" {
		t.Errorf("Expected nome 'Alimentação', got %s", categoria.Nome)
	}

	if categoria.ID == 0 {
		t.Error("Expected a generated categoria ID")
	}
}

func TestCreateCategoria_TrimsNome(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	categoria, err := categoriaService.CreateCategoria("  Transporte  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if categoria.Nome != "Transporte" {
		t.Errorf("Expected trimmed nome 'Transporte', got %q", categoria.Nome)
	}
}

func TestCreateCategoria_EmptyNome(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	_, err := categoriaService.CreateCategoria("   ")
	if err != domain.ErrNomeRequired {
		t.Errorf("Expected ErrNomeRequired, got %v", err)
	}
}

func TestCreateCategoria_NomeTooLong(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	_, err := categoriaService.CreateCategoria(strings.Repeat("a", domain.MaxCategoriaNomeLength+1))
	if err != domain.ErrNomeTooLong {
		t.Errorf("Expected ErrNomeTooLong, got %v", err)
	}
}

func TestCreateCategoria_DuplicateNome(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	_, err := categoriaService.CreateCategoria("Lazer")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = categoriaService.CreateCategoria("Lazer")
	if err != domain.ErrCategoriaAlreadyExists {
		t.Errorf("Expected ErrCategoriaAlreadyExists, got %v", err)
	}
}

func TestCreateCategoria_NomeCaseSensitive(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	_, err := categoriaService.CreateCategoria("Mercado")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Uniqueness compares nomes byte for byte; a different casing is a
	// distinct categoria.
	categoria, err := categoriaService.CreateCategoria("mercado")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if categoria.Nome != "mercado" {
		t.Errorf("Expected nome 'mercado', got %s", categoria.Nome)
	}
}

func TestGetCategorias_OrderedByNome(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	for _, nome := range []string{"Transporte", "Alimentação", "Lazer"} {
		if _, err := categoriaService.CreateCategoria(nome); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	categorias, err := categoriaService.GetCategorias()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(categorias) != 3 {
		t.Fatalf("Expected 3 categorias, got %d", len(categorias))
	}

	want := []string{"Alimentação", "Lazer", "Transporte"}
	for i, nome := range want {
		if categorias[i].Nome != nome {
			t.Errorf("Expected categoria %d to be %s, got %s", i, nome, categorias[i].Nome)
		}
	}
}

func TestUpdateCategoria_Success(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	categoria, err := categoriaService.CreateCategoria("Lazer")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := categoriaService.UpdateCategoria(categoria.ID, "  Entretenimento ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Nome != "Entretenimento" {
		t.Errorf("Expected nome 'Entretenimento', got %s", updated.Nome)
	}
}

func TestUpdateCategoria_NotFound(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	_, err := categoriaService.UpdateCategoria(99, "Qualquer")
	if err != domain.ErrCategoriaNotFound {
		t.Errorf("Expected ErrCategoriaNotFound, got %v", err)
	}
}

func TestDeleteCategoria_Success(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	categoria, err := categoriaService.CreateCategoria("Lazer")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := categoriaService.DeleteCategoria(categoria.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := categoriaService.GetCategoriaByID(categoria.ID); err != domain.ErrCategoriaNotFound {
		t.Errorf("Expected ErrCategoriaNotFound after delete, got %v", err)
	}
}

func TestDeleteCategoria_NotFound(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	err := categoriaService.DeleteCategoria(99)
	if err != domain.ErrCategoriaNotFound {
		t.Errorf("Expected ErrCategoriaNotFound, got %v", err)
	}
}

func TestDeleteCategoria_InUse(t *testing.T) {
	categoriaRepo := testutil.NewMockCategoriaRepository()
	categoriaService := NewCategoriaService(categoriaRepo)

	categoria, err := categoriaService.CreateCategoria("Lazer")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	categoriaRepo.LancamentoCounts[categoria.ID] = 2

	err = categoriaService.DeleteCategoria(categoria.ID)
	if err != domain.ErrCategoriaInUse {
		t.Errorf("Expected ErrCategoriaInUse, got %v", err)
	}

	if _, err := categoriaService.GetCategoriaByID(categoria.ID); err != nil {
		t.Errorf("Categoria should still exist, got %v", err)
	}
}
