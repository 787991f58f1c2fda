package istiogenerator

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/devantler-tech/templ-gen/pkg/apis/istio/v1alpha3"
	"github.com/devantler-tech/templ-gen/pkg/fsutil"
	"github.com/devantler-tech/templ-gen/pkg/io/generator"
	yamlgenerator "github.com/devantler-tech/templ-gen/pkg/io/generator/yaml"
	"github.com/devantler-tech/templ-gen/pkg/io/marshaller"
	"github.com/devantler-tech/templ-gen/pkg/ui/logger"
	"github.com/devantler-tech/templ-gen/pkg/ui/notify"
)

// DefaultNamespace is the namespace the CLI offers when none is given.
const DefaultNamespace = "default"

// ErrEmptyServiceName is returned when a Service has no name.
var ErrEmptyServiceName = errors.New("service name cannot be empty")

// Service holds the inputs a template set is derived from.
type Service struct {
	// Name is the base name all resource names and filenames derive from.
	Name string
	// Namespace is written to metadata.namespace as is.
	Namespace string
	// Domain is optional. When set, hosts become fully qualified under it.
	Domain string
}

// Template is one rendered document of a template set.
type Template struct {
	Kind     v1alpha3.Kind
	FileName string
	Document v1alpha3.Document
	Content  string
}

// Generator writes the four Istio templates of a service into OutputDir.
type Generator struct {
	// Documents serializes and writes a single document.
	Documents generator.Generator[v1alpha3.Document, generator.Options]
	// OutputDir is the directory templates are written to.
	OutputDir string
	// Writer receives one status line per written file and the domain summary.
	Writer io.Writer
}

// NewGenerator creates a Generator writing YAML into outputDir and reporting to writer.
func NewGenerator(outputDir string, writer io.Writer) *Generator {
	return NewGeneratorWithMarshaller(outputDir, writer, marshaller.NewYAMLMarshaller[v1alpha3.Document]())
}

// NewGeneratorWithMarshaller creates a Generator that serializes documents with m.
func NewGeneratorWithMarshaller(
	outputDir string,
	writer io.Writer,
	m marshaller.Marshaller[v1alpha3.Document],
) *Generator {
	return &Generator{
		Documents: yamlgenerator.NewGeneratorWithMarshaller(m),
		OutputDir: outputDir,
		Writer:    writer,
	}
}

// Build constructs the documents for svc in generation order. Inputs are used verbatim.
func Build(svc Service) []v1alpha3.Document {
	namespace := svc.Namespace

	return []v1alpha3.Document{
		NewVirtualService(v1alpha3.KindVirtualService.ResourceName(svc.Name), namespace, svc.Name, svc.Domain),
		NewDestinationRule(v1alpha3.KindDestinationRule.ResourceName(svc.Name), namespace, svc.Name, svc.Domain),
		NewGateway(v1alpha3.KindGateway.ResourceName(svc.Name), namespace, svc.Domain),
		NewServiceEntry(v1alpha3.KindServiceEntry.ResourceName(svc.Name), namespace, svc.Name, svc.Domain),
	}
}

// Render serializes the documents for svc without touching the filesystem.
func (g *Generator) Render(svc Service) ([]Template, error) {
	if svc.Name == "" {
		return nil, ErrEmptyServiceName
	}

	documents := Build(svc)
	templates := make([]Template, 0, len(documents))

	for _, document := range documents {
		content, err := g.Documents.Generate(document, generator.Options{})
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", document.GetKind(), err)
		}

		templates = append(templates, Template{
			Kind:     document.GetKind(),
			FileName: document.GetKind().FileName(svc.Name),
			Document: document,
			Content:  content,
		})
	}

	return templates, nil
}

// Generate writes the templates for svc into OutputDir and returns the written paths.
//
// Existing files are overwritten. Files are written one by one; when a write fails the files
// written before it stay on disk and the error for the failing file is returned.
func (g *Generator) Generate(svc Service) ([]string, error) {
	if svc.Name == "" {
		return nil, ErrEmptyServiceName
	}

	log := logger.WithComponent("generator")

	err := fsutil.EnsureDir(g.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("prepare output directory: %w", err)
	}

	documents := Build(svc)
	written := make([]string, 0, len(documents))

	for _, document := range documents {
		kind := document.GetKind()
		path := filepath.Join(g.OutputDir, kind.FileName(svc.Name))

		log.WithField("kind", kind).WithField("path", path).Debug("writing template")

		_, err := g.Documents.Generate(document, generator.Options{Output: path, Force: true})
		if err != nil {
			return written, fmt.Errorf("generate %s: %w", kind, err)
		}

		written = append(written, path)

		notify.Generatef(g.Writer, "Generated %s", path)
	}

	g.writeDomainSummary(svc)

	return written, nil
}

func (g *Generator) writeDomainSummary(svc Service) {
	if svc.Domain == "" {
		notify.Infof(g.Writer, "No domain specified, using default service names")

		return
	}

	notify.Infof(
		g.Writer,
		"Domain configuration:\n- Service FQDN: %s\n- Gateway hosts: %s",
		ServiceHost(svc.Name, svc.Domain),
		strings.Join(GatewayHosts(svc.Domain), ", "),
	)
}
