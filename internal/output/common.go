package output

// TSVHeader is the canonical header row for tsv output. Single source of
// truth for all writers.
const TSVHeader = "id\tlength\tseed\tsimulator\tgc\tmean_run\tentropy\ta\tc\tg\tt"
