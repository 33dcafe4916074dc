package schema

// Option names recognized by the integration.
const (
	OptWorkFileTemplate     = "work_file_template"
	OptOutputRenderTemplate = "output_render_template"
	OptDeadlineBatchName    = "deadline_batch_name"
	OptRenderMetadata       = "render_metadata"
	OptPostTaskScript       = "post_task_script"
)

// MetadataItemKeys is the item schema of the render_metadata option. Every
// list item carries exactly these sub-keys, each a string.
var MetadataItemKeys = []string{"key", "type", "expression", "group"}

// Default returns the configuration declaration of the RenderMan
// render-submission integration.
func Default() Manifest {
	return Manifest{
		DisplayName:      "RenderMan Render Node",
		Description:      "Support for submitting RenderMan renders from Houdini to the farm.",
		SupportedEngines: []string{EngineHoudini},
		Options: []Option{
			{
				Name:        OptWorkFileTemplate,
				Type:        TypeTemplate,
				Description: "A reference to a template which locates the current Houdini work file. This is used to extract the version number to render with.",
				Fields: []FieldSpec{
					{Name: "context"},
					{Name: "version"},
					{Name: "name", Optional: true},
				},
			},
			{
				Name:        OptOutputRenderTemplate,
				Type:        TypeTemplate,
				Description: "A reference to a template which defines where rendered output is written to disk.",
				Fields: []FieldSpec{
					{Name: "context"},
					{Name: "version"},
					{Name: "SEQ"},
					{Name: "aov_name", Optional: true},
					{Name: "name", Optional: true},
					{Name: "width", Optional: true},
					{Name: "height", Optional: true},
				},
			},
			{
				Name:        OptDeadlineBatchName,
				Type:        TypeTemplate,
				Description: "A reference to a template which names the batch grouping farm submissions belong to.",
				Fields: []FieldSpec{
					{Name: "context"},
				},
				AllowsEmpty: true,
			},
			{
				Name:        OptRenderMetadata,
				Type:        TypeList,
				Description: "Additional metadata entries to attach to renders. Each entry is prefixed with 'rmd_' when applied.",
				ItemSchema:  MetadataItemKeys,
				AllowsEmpty: true,
			},
			{
				Name:        OptPostTaskScript,
				Type:        TypeString,
				Description: "Path to a script to run after each render task completes.",
			},
		},
	}
}
